package seatmap

// Notifier receives selection feedback events. The booking flow wires a
// toast/notification presenter here; tests wire a recorder.
type Notifier interface {
	SeatSelected(seat Seat)
	SeatDeselected(seat Seat)
}

// NopNotifier discards all selection events.
type NopNotifier struct{}

func (NopNotifier) SeatSelected(Seat)   {}
func (NopNotifier) SeatDeselected(Seat) {}

// Selection is the ordered set of seats a user has chosen for one trip
// but not yet confirmed. Membership is keyed by seat ID; a seat's
// server-reported status is never mutated by selection. One Selection
// serves one open booking flow and is discarded on close or confirm.
//
// Each logical toggle gets a monotonic generation number and delivers
// exactly one notification; re-delivery of an already-notified
// generation is suppressed, so a host that re-invokes handlers cannot
// produce duplicate toasts.
type Selection struct {
	seats       []Seat
	notifier    Notifier
	generation  uint64
	notifiedGen uint64
}

// NewSelection creates an empty selection. A nil notifier is replaced
// with NopNotifier.
func NewSelection(n Notifier) *Selection {
	if n == nil {
		n = NopNotifier{}
	}
	return &Selection{notifier: n}
}

// Toggle flips the seat's membership. SOLD and HOLD seats are never
// added regardless of prior state; toggling them is a no-op. Returns
// true when the seat is part of the selection after the call.
func (s *Selection) Toggle(seat Seat) bool {
	if !seat.Selectable() {
		return s.Contains(seat.ID)
	}

	s.generation++
	for i := range s.seats {
		if s.seats[i].ID == seat.ID {
			s.seats = append(s.seats[:i], s.seats[i+1:]...)
			s.notifyOnce(func() { s.notifier.SeatDeselected(seat) })
			return false
		}
	}
	s.seats = append(s.seats, seat)
	s.notifyOnce(func() { s.notifier.SeatSelected(seat) })
	return true
}

// notifyOnce delivers at most one notification per toggle generation.
func (s *Selection) notifyOnce(fire func()) {
	if s.notifiedGen == s.generation {
		return
	}
	s.notifiedGen = s.generation
	fire()
}

// Contains reports membership by seat ID.
func (s *Selection) Contains(id int) bool {
	for i := range s.seats {
		if s.seats[i].ID == id {
			return true
		}
	}
	return false
}

// Seats returns the selected seats in selection order. The returned
// slice is a copy; mutating it does not affect the selection.
func (s *Selection) Seats() []Seat {
	out := make([]Seat, len(s.seats))
	copy(out, s.seats)
	return out
}

// IDs returns the selected seat IDs in selection order.
func (s *Selection) IDs() []int {
	out := make([]int, len(s.seats))
	for i := range s.seats {
		out[i] = s.seats[i].ID
	}
	return out
}

// Count returns the number of selected seats.
func (s *Selection) Count() int {
	return len(s.seats)
}

// Clear empties the selection, as when the booking modal closes.
func (s *Selection) Clear() {
	s.seats = s.seats[:0]
}

// CanConfirm reports whether a booking attempt may proceed: a trip must
// be present and at least one seat selected.
func (s *Selection) CanConfirm(hasTrip bool) bool {
	return hasTrip && len(s.seats) > 0
}
