package seatmap

import (
	"fmt"
	"strings"
)

// VehicleType selects which seat layout a vehicle uses. Matching is
// case-insensitive; values are stored uppercase.
type VehicleType string

const (
	VehicleNormal        VehicleType = "NORMAL"
	VehicleLimousine     VehicleType = "LIMOUSINE"
	VehicleSleeper       VehicleType = "SLEEPER"
	VehicleDoubleSleeper VehicleType = "DOUBLESLEEPER"
)

// RowSpec maps one visual row onto positions in a floor's seat slice.
// Indexes are per-floor offsets; -1 marks an aisle gap cell.
type RowSpec struct {
	Indexes []int
}

// Layout describes how a flat seat roster maps onto the 2D grid for one
// vehicle shape: seats per floor, floor count and the per-floor row
// pattern. One layout instance serves every vehicle of its type.
type Layout struct {
	Type          VehicleType
	SeatCount     int
	Floors        int
	SeatsPerFloor int
	Rows          []RowSpec
}

// Cell is one grid position: a seat, an aisle gap, or an empty slot when
// the roster is shorter than the layout expects.
type Cell struct {
	Seat  *Seat
	Aisle bool
}

// FloorGrid is the rendered grid for one floor of a vehicle.
type FloorGrid struct {
	Floor int
	Rows  [][]Cell
}

// normalRows builds the 45-seat single-deck pattern: ten rows of two
// pairs across an aisle covering seats 0..39, then a five-seat back row.
func normalRows() []RowSpec {
	rows := make([]RowSpec, 0, 11)
	for i := 0; i < 10; i++ {
		rows = append(rows, RowSpec{Indexes: []int{2 * i, 2*i + 1, -1, 2*i + 20, 2*i + 21}})
	}
	rows = append(rows, RowSpec{Indexes: []int{40, 41, 42, 43, 44}})
	return rows
}

// sleeperRows builds the 36-seat double-deck pattern: six rows of three
// berths per floor.
func sleeperRows() []RowSpec {
	rows := make([]RowSpec, 0, 6)
	for i := 0; i < 6; i++ {
		rows = append(rows, RowSpec{Indexes: []int{3 * i, 3*i + 1, 3*i + 2}})
	}
	return rows
}

// doubleSleeperRows builds the 22-seat VIP pattern: five paired rows plus
// a trailing single berth per floor.
func doubleSleeperRows() []RowSpec {
	rows := make([]RowSpec, 0, 6)
	for i := 0; i < 5; i++ {
		rows = append(rows, RowSpec{Indexes: []int{2 * i, 2*i + 1}})
	}
	rows = append(rows, RowSpec{Indexes: []int{10}})
	return rows
}

var layouts = map[VehicleType]*Layout{
	VehicleNormal: {
		Type:          VehicleNormal,
		SeatCount:     45,
		Floors:        1,
		SeatsPerFloor: 45,
		Rows:          normalRows(),
	},
	VehicleLimousine: {
		Type:          VehicleLimousine,
		SeatCount:     9,
		Floors:        1,
		SeatsPerFloor: 9,
		Rows: []RowSpec{
			{Indexes: []int{0, -1, 1}},
			{Indexes: []int{2, -1, 3}},
			{Indexes: []int{4, -1, 5}},
			{Indexes: []int{6, 7, 8}},
		},
	},
	VehicleSleeper: {
		Type:          VehicleSleeper,
		SeatCount:     36,
		Floors:        2,
		SeatsPerFloor: 18,
		Rows:          sleeperRows(),
	},
	VehicleDoubleSleeper: {
		Type:          VehicleDoubleSleeper,
		SeatCount:     22,
		Floors:        2,
		SeatsPerFloor: 11,
		Rows:          doubleSleeperRows(),
	},
}

// LayoutFor resolves a vehicle type string to its layout. The lookup is
// case-insensitive; ok is false for unrecognized types so callers can
// render a "no layout available" fallback instead of guessing.
func LayoutFor(vehicleType string) (*Layout, bool) {
	l, ok := layouts[VehicleType(strings.ToUpper(vehicleType))]
	return l, ok
}

// ParseVehicleType normalizes and validates a vehicle type string.
func ParseVehicleType(s string) (VehicleType, bool) {
	t := VehicleType(strings.ToUpper(s))
	_, ok := layouts[t]
	return t, ok
}

// floorSeats splits the roster into per-floor slices. Seats carrying an
// explicit floor number are grouped by it; seats without one fall back
// to roster order, SeatsPerFloor per deck.
func (l *Layout) floorSeats(seats []Seat) [][]Seat {
	out := make([][]Seat, l.Floors)
	if l.Floors == 1 {
		out[0] = seats
		return out
	}
	grouped := false
	for i := range seats {
		f := seats[i].Floor
		if f >= 1 && f <= l.Floors {
			out[f-1] = append(out[f-1], seats[i])
			grouped = true
		}
	}
	if !grouped {
		for f := 0; f < l.Floors; f++ {
			lo := f * l.SeatsPerFloor
			hi := lo + l.SeatsPerFloor
			if lo > len(seats) {
				break
			}
			if hi > len(seats) {
				hi = len(seats)
			}
			out[f] = seats[lo:hi]
		}
	}
	return out
}

// BuildGrid maps a flat seat roster onto the layout's per-floor grids.
// A roster shorter than the layout expects produces empty cells at the
// missing positions rather than an error; the backend is trusted to send
// the right roster length for the vehicle type.
func (l *Layout) BuildGrid(seats []Seat) []FloorGrid {
	grids := make([]FloorGrid, 0, l.Floors)
	for floor, fs := range l.floorSeats(seats) {
		rows := make([][]Cell, 0, len(l.Rows))
		for _, spec := range l.Rows {
			row := make([]Cell, 0, len(spec.Indexes))
			for _, idx := range spec.Indexes {
				switch {
				case idx < 0:
					row = append(row, Cell{Aisle: true})
				case idx < len(fs):
					row = append(row, Cell{Seat: &fs[idx]})
				default:
					row = append(row, Cell{})
				}
			}
			rows = append(rows, row)
		}
		grids = append(grids, FloorGrid{Floor: floor + 1, Rows: rows})
	}
	return grids
}

// SeatNames generates the canonical seat names for a vehicle of this
// layout, used when seeding a new vehicle's seat roster. Single-deck
// seats are numbered 1..N; double-deck seats get an A/B floor prefix.
func (l *Layout) SeatNames() []string {
	names := make([]string, 0, l.SeatCount)
	if l.Floors == 1 {
		for i := 1; i <= l.SeatCount; i++ {
			names = append(names, fmt.Sprintf("S%02d", i))
		}
		return names
	}
	prefixes := []string{"A", "B"}
	for f := 0; f < l.Floors; f++ {
		for i := 1; i <= l.SeatsPerFloor; i++ {
			names = append(names, fmt.Sprintf("%s%02d", prefixes[f], i))
		}
	}
	return names
}
