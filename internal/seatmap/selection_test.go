package seatmap

import "testing"

type recordingNotifier struct {
	selected   []int
	deselected []int
}

func (r *recordingNotifier) SeatSelected(seat Seat)   { r.selected = append(r.selected, seat.ID) }
func (r *recordingNotifier) SeatDeselected(seat Seat) { r.deselected = append(r.deselected, seat.ID) }

func availableSeat(id int) Seat {
	return Seat{ID: id, Name: "S01", Floor: 1, Status: StatusAvailable}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	sel := NewSelection(nil)
	seat := availableSeat(3)

	if !sel.Toggle(seat) {
		t.Fatal("first toggle should select the seat")
	}
	if !sel.Contains(3) || sel.Count() != 1 {
		t.Fatal("seat should be in the selection")
	}

	if sel.Toggle(seat) {
		t.Fatal("second toggle should deselect the seat")
	}
	if sel.Contains(3) || sel.Count() != 0 {
		t.Fatal("seat should be removed from the selection")
	}
}

func TestToggleNeverAddsTakenSeats(t *testing.T) {
	sel := NewSelection(nil)

	for _, status := range []SeatStatus{StatusHold, StatusSold} {
		seat := Seat{ID: 7, Name: "A07", Status: status}
		if sel.Toggle(seat) {
			t.Errorf("toggle of %s seat should not select it", status)
		}
		if sel.Count() != 0 {
			t.Errorf("%s seat ended up in the selection", status)
		}
	}
}

func TestToggleDoesNotMutateStatus(t *testing.T) {
	sel := NewSelection(nil)
	seat := availableSeat(1)

	sel.Toggle(seat)
	if seat.Status != StatusAvailable {
		t.Error("toggling must not change the seat's reported status")
	}
	for _, s := range sel.Seats() {
		if s.Status != StatusAvailable {
			t.Error("stored seats keep their server-reported status")
		}
	}
}

func TestSelectionHasNoDuplicates(t *testing.T) {
	sel := NewSelection(nil)
	seat := availableSeat(5)

	sel.Toggle(seat)
	sel.Toggle(seat)
	sel.Toggle(seat)

	if sel.Count() != 1 {
		t.Fatalf("count = %d after odd number of toggles, want 1", sel.Count())
	}
	ids := sel.IDs()
	if len(ids) != 1 || ids[0] != 5 {
		t.Fatalf("IDs = %v, want [5]", ids)
	}
}

func TestSelectionOrderPreserved(t *testing.T) {
	sel := NewSelection(nil)
	for _, id := range []int{4, 2, 9} {
		sel.Toggle(availableSeat(id))
	}
	sel.Toggle(availableSeat(2)) // remove the middle one

	got := sel.IDs()
	want := []int{4, 9}
	if len(got) != len(want) {
		t.Fatalf("IDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", got, want)
		}
	}
}

func TestNotifierFiresOncePerToggle(t *testing.T) {
	rec := &recordingNotifier{}
	sel := NewSelection(rec)
	seat := availableSeat(8)

	sel.Toggle(seat)
	sel.Toggle(seat)
	sel.Toggle(seat)

	if len(rec.selected) != 2 {
		t.Errorf("selected notifications = %d, want 2", len(rec.selected))
	}
	if len(rec.deselected) != 1 {
		t.Errorf("deselected notifications = %d, want 1", len(rec.deselected))
	}
}

func TestNotifierSilentForTakenSeats(t *testing.T) {
	rec := &recordingNotifier{}
	sel := NewSelection(rec)

	sel.Toggle(Seat{ID: 1, Status: StatusSold})
	sel.Toggle(Seat{ID: 2, Status: StatusHold})

	if len(rec.selected)+len(rec.deselected) != 0 {
		t.Error("no-op toggles must not notify")
	}
}

func TestClear(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle(availableSeat(1))
	sel.Toggle(availableSeat(2))

	sel.Clear()
	if sel.Count() != 0 {
		t.Error("Clear should empty the selection")
	}
	if sel.Contains(1) {
		t.Error("cleared seats must not be reported as selected")
	}
}

func TestCanConfirm(t *testing.T) {
	sel := NewSelection(nil)

	if sel.CanConfirm(true) {
		t.Error("empty selection must not confirm")
	}

	sel.Toggle(availableSeat(1))
	if !sel.CanConfirm(true) {
		t.Error("non-empty selection with a trip should confirm")
	}
	if sel.CanConfirm(false) {
		t.Error("selection without a trip must not confirm")
	}
}

func TestSeatsReturnsCopy(t *testing.T) {
	sel := NewSelection(nil)
	sel.Toggle(availableSeat(1))

	seats := sel.Seats()
	seats[0].ID = 999

	if !sel.Contains(1) || sel.Contains(999) {
		t.Error("mutating the returned slice must not affect the selection")
	}
}
