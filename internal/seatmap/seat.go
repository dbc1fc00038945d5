package seatmap

import (
	"regexp"
	"strconv"
)

// SeatStatus is the server-reported occupancy state of a seat at roster
// fetch time. Local selection never writes this field; "currently selected"
// is tracked separately (see Selection).
type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusHold      SeatStatus = "HOLD"
	StatusSold      SeatStatus = "SOLD"
)

// Seat is one seat in a vehicle's roster. ID is unique within the roster.
// Floor is 1 or 2; single-deck layouts carry 1 for every seat.
type Seat struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Floor  int        `json:"floor"`
	Status SeatStatus `json:"status"`
}

var seatNumberPattern = regexp.MustCompile(`(\d+)$`)

// DisplayNumber extracts the trailing numeric part of the seat name
// ("A12" -> 12). Returns 0 when the name has no numeric suffix.
func (s Seat) DisplayNumber() int {
	m := seatNumberPattern.FindString(s.Name)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// Selectable reports whether the seat can enter a selection. SOLD and
// HOLD seats are rendered as taken and are never selectable.
func (s Seat) Selectable() bool {
	return s.Status == StatusAvailable
}
