package seatmap

import (
	"fmt"
	"testing"
)

func makeRoster(layout *Layout) []Seat {
	names := layout.SeatNames()
	seats := make([]Seat, len(names))
	for i, name := range names {
		seats[i] = Seat{
			ID:     i + 1,
			Name:   name,
			Floor:  i/layout.SeatsPerFloor + 1,
			Status: StatusAvailable,
		}
	}
	return seats
}

func gridSeatIDs(grids []FloorGrid) map[int]int {
	counts := make(map[int]int)
	for _, grid := range grids {
		for _, row := range grid.Rows {
			for _, cell := range row {
				if cell.Seat != nil {
					counts[cell.Seat.ID]++
				}
			}
		}
	}
	return counts
}

func TestLayoutForAllTypes(t *testing.T) {
	cases := []struct {
		vtype     string
		seatCount int
		floors    int
	}{
		{"NORMAL", 45, 1},
		{"LIMOUSINE", 9, 1},
		{"SLEEPER", 36, 2},
		{"DOUBLESLEEPER", 22, 2},
	}

	for _, tc := range cases {
		layout, ok := LayoutFor(tc.vtype)
		if !ok {
			t.Fatalf("LayoutFor(%q) not found", tc.vtype)
		}
		if layout.SeatCount != tc.seatCount {
			t.Errorf("%s: seat count = %d, want %d", tc.vtype, layout.SeatCount, tc.seatCount)
		}
		if layout.Floors != tc.floors {
			t.Errorf("%s: floors = %d, want %d", tc.vtype, layout.Floors, tc.floors)
		}
		if layout.SeatsPerFloor*layout.Floors != layout.SeatCount {
			t.Errorf("%s: %d seats per floor x %d floors != %d seats",
				tc.vtype, layout.SeatsPerFloor, layout.Floors, layout.SeatCount)
		}
	}
}

func TestLayoutForCaseInsensitive(t *testing.T) {
	for _, vtype := range []string{"normal", "Limousine", "sleeper", "doubleSleeper"} {
		if _, ok := LayoutFor(vtype); !ok {
			t.Errorf("LayoutFor(%q) should resolve case-insensitively", vtype)
		}
	}
}

func TestLayoutForUnknownType(t *testing.T) {
	if _, ok := LayoutFor("MINIBUS"); ok {
		t.Error("LayoutFor should report ok=false for unknown types")
	}
	if _, ok := ParseVehicleType(""); ok {
		t.Error("ParseVehicleType should reject the empty string")
	}
}

// Every seat of the roster must appear in the grid exactly once, on its
// own floor, regardless of layout.
func TestBuildGridCoversEverySeatOnce(t *testing.T) {
	for vtype, layout := range layouts {
		t.Run(string(vtype), func(t *testing.T) {
			seats := makeRoster(layout)
			grids := layout.BuildGrid(seats)

			if len(grids) != layout.Floors {
				t.Fatalf("grid count = %d, want %d", len(grids), layout.Floors)
			}

			counts := gridSeatIDs(grids)
			if len(counts) != layout.SeatCount {
				t.Fatalf("grid places %d distinct seats, want %d", len(counts), layout.SeatCount)
			}
			for id, n := range counts {
				if n != 1 {
					t.Errorf("seat %d appears %d times", id, n)
				}
			}
		})
	}
}

func TestBuildGridNormalShape(t *testing.T) {
	layout, _ := LayoutFor("NORMAL")
	grids := layout.BuildGrid(makeRoster(layout))

	rows := grids[0].Rows
	if len(rows) != 11 {
		t.Fatalf("row count = %d, want 11", len(rows))
	}
	// First ten rows have an aisle gap in the middle
	for i := 0; i < 10; i++ {
		if len(rows[i]) != 5 {
			t.Fatalf("row %d width = %d, want 5", i, len(rows[i]))
		}
		if !rows[i][2].Aisle {
			t.Errorf("row %d cell 2 should be the aisle", i)
		}
	}
	// Back row is five seats straight across
	for j, cell := range rows[10] {
		if cell.Seat == nil {
			t.Errorf("back row cell %d should hold a seat", j)
		}
	}
}

// rowIDs flattens one grid row into seat IDs, 0 for aisle/empty cells.
func rowIDs(row []Cell) []int {
	ids := make([]int, len(row))
	for i, cell := range row {
		if cell.Seat != nil {
			ids[i] = cell.Seat.ID
		}
	}
	return ids
}

func assertRow(t *testing.T, label string, row []Cell, want []int) {
	t.Helper()
	got := rowIDs(row)
	if len(got) != len(want) {
		t.Fatalf("%s: width = %d, want %d", label, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s: seats = %v, want %v", label, got, want)
			return
		}
	}
}

// The grid builder must reproduce each layout's exact seat placement:
// left pair / aisle / right pair pattern for a coach, window-to-window
// triples for a sleeper, left-right berth pairs for a double sleeper.
func TestBuildGridSeatPlacement(t *testing.T) {
	t.Run("NORMAL", func(t *testing.T) {
		layout, _ := LayoutFor("NORMAL")
		rows := layout.BuildGrid(makeRoster(layout))[0].Rows

		assertRow(t, "row 0", rows[0], []int{1, 2, 0, 21, 22})
		assertRow(t, "row 3", rows[3], []int{7, 8, 0, 27, 28})
		assertRow(t, "row 9", rows[9], []int{19, 20, 0, 39, 40})
		assertRow(t, "back row", rows[10], []int{41, 42, 43, 44, 45})
	})

	t.Run("LIMOUSINE", func(t *testing.T) {
		layout, _ := LayoutFor("LIMOUSINE")
		rows := layout.BuildGrid(makeRoster(layout))[0].Rows

		assertRow(t, "row 0", rows[0], []int{1, 0, 2})
		assertRow(t, "row 2", rows[2], []int{5, 0, 6})
		assertRow(t, "back row", rows[3], []int{7, 8, 9})
	})

	t.Run("SLEEPER", func(t *testing.T) {
		layout, _ := LayoutFor("SLEEPER")
		grids := layout.BuildGrid(makeRoster(layout))

		assertRow(t, "floor 1 row 0", grids[0].Rows[0], []int{1, 2, 3})
		assertRow(t, "floor 1 row 5", grids[0].Rows[5], []int{16, 17, 18})
		assertRow(t, "floor 2 row 0", grids[1].Rows[0], []int{19, 20, 21})
		assertRow(t, "floor 2 row 5", grids[1].Rows[5], []int{34, 35, 36})
	})

	t.Run("DOUBLESLEEPER", func(t *testing.T) {
		layout, _ := LayoutFor("DOUBLESLEEPER")
		grids := layout.BuildGrid(makeRoster(layout))

		assertRow(t, "floor 1 row 0", grids[0].Rows[0], []int{1, 2})
		assertRow(t, "floor 1 row 4", grids[0].Rows[4], []int{9, 10})
		assertRow(t, "floor 1 single", grids[0].Rows[5], []int{11})
		assertRow(t, "floor 2 row 0", grids[1].Rows[0], []int{12, 13})
		assertRow(t, "floor 2 single", grids[1].Rows[5], []int{22})
	})
}

func TestBuildGridDoubleSleeperShape(t *testing.T) {
	layout, _ := LayoutFor("DOUBLESLEEPER")
	grids := layout.BuildGrid(makeRoster(layout))

	for _, grid := range grids {
		if len(grid.Rows) != 6 {
			t.Fatalf("floor %d row count = %d, want 6", grid.Floor, len(grid.Rows))
		}
		for i := 0; i < 5; i++ {
			if len(grid.Rows[i]) != 2 {
				t.Errorf("floor %d row %d width = %d, want 2", grid.Floor, i, len(grid.Rows[i]))
			}
		}
		if len(grid.Rows[5]) != 1 {
			t.Errorf("floor %d last row width = %d, want 1 (single berth)", grid.Floor, len(grid.Rows[5]))
		}
	}
}

func TestBuildGridShortRoster(t *testing.T) {
	layout, _ := LayoutFor("LIMOUSINE")
	seats := makeRoster(layout)[:5]
	grids := layout.BuildGrid(seats)

	counts := gridSeatIDs(grids)
	if len(counts) != 5 {
		t.Fatalf("grid places %d seats, want 5", len(counts))
	}
	// Missing positions render as empty cells, not aisles
	lastRow := grids[0].Rows[3]
	for _, cell := range lastRow {
		if cell.Seat != nil || cell.Aisle {
			t.Error("positions beyond the roster should be empty cells")
		}
	}
}

func TestBuildGridGroupsByFloorField(t *testing.T) {
	layout, _ := LayoutFor("SLEEPER")
	seats := makeRoster(layout)

	grids := layout.BuildGrid(seats)
	for _, grid := range grids {
		for _, row := range grid.Rows {
			for _, cell := range row {
				if cell.Seat != nil && cell.Seat.Floor != grid.Floor {
					t.Errorf("seat %s (floor %d) rendered on floor %d",
						cell.Seat.Name, cell.Seat.Floor, grid.Floor)
				}
			}
		}
	}
}

func TestSeatNames(t *testing.T) {
	normal, _ := LayoutFor("NORMAL")
	names := normal.SeatNames()
	if names[0] != "S01" || names[44] != "S45" {
		t.Errorf("single-deck names = %s..%s, want S01..S45", names[0], names[44])
	}

	sleeper, _ := LayoutFor("SLEEPER")
	names = sleeper.SeatNames()
	if names[0] != "A01" {
		t.Errorf("first upper-deck name = %s, want A01", names[0])
	}
	if names[18] != "B01" {
		t.Errorf("first lower-deck name = %s, want B01", names[18])
	}
	if got := len(names); got != 36 {
		t.Errorf("name count = %d, want 36", got)
	}
}

func TestDisplayNumber(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"S01", 1},
		{"A12", 12},
		{"B7", 7},
		{"VIP", 0},
	}
	for _, tc := range cases {
		seat := Seat{Name: tc.name}
		if got := seat.DisplayNumber(); got != tc.want {
			t.Errorf("DisplayNumber(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func ExampleLayout_SeatNames() {
	layout, _ := LayoutFor("DOUBLESLEEPER")
	names := layout.SeatNames()
	fmt.Println(names[0], names[10], names[11])
	// Output: A01 A11 B01
}
