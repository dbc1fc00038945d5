package trips

import (
	"coachbooking/internal/pricing"
	"coachbooking/internal/seatmap"
)

// SeatRosterResponse is the payload the seat-selection UI renders: the
// flat roster in canonical order plus the per-floor grid the layout
// engine derives from it. DisabledSeats lists every SOLD/HOLD seat ID
// so the client does not have to recompute eligibility.
type SeatRosterResponse struct {
	TripID        string              `json:"trip_id"`
	VehicleType   string              `json:"vehicle_type"`
	UnitPrice     float64             `json:"unit_price"`
	UnitPriceVND  string              `json:"unit_price_vnd"`
	Seats         []seatmap.Seat      `json:"seats"`
	Floors        []FloorResponse     `json:"floors"`
	DisabledSeats []int               `json:"disabled_seats"`
	Layout        *LayoutInfoResponse `json:"layout,omitempty"`
}

// FloorResponse is one floor of the rendered seat grid
type FloorResponse struct {
	Floor int              `json:"floor"`
	Rows  [][]CellResponse `json:"rows"`
}

// CellResponse is one grid position: seat, aisle gap, or empty slot
type CellResponse struct {
	Seat  *seatmap.Seat `json:"seat,omitempty"`
	Aisle bool          `json:"aisle,omitempty"`
	Empty bool          `json:"empty,omitempty"`
}

// LayoutInfoResponse describes the vehicle shape for the client
type LayoutInfoResponse struct {
	Type          string `json:"type"`
	SeatCount     int    `json:"seat_count"`
	Floors        int    `json:"floors"`
	SeatsPerFloor int    `json:"seats_per_floor"`
}

func newRosterResponse(trip *Trip, layout *seatmap.Layout, seats []seatmap.Seat) *SeatRosterResponse {
	unit := trip.UnitPrice()
	resp := &SeatRosterResponse{
		TripID:        trip.ID.String(),
		VehicleType:   string(layout.Type),
		UnitPrice:     unit,
		UnitPriceVND:  pricing.FormatVND(unit),
		Seats:         seats,
		DisabledSeats: []int{},
		Layout: &LayoutInfoResponse{
			Type:          string(layout.Type),
			SeatCount:     layout.SeatCount,
			Floors:        layout.Floors,
			SeatsPerFloor: layout.SeatsPerFloor,
		},
	}

	for _, s := range seats {
		if !s.Selectable() {
			resp.DisabledSeats = append(resp.DisabledSeats, s.ID)
		}
	}

	for _, fg := range layout.BuildGrid(seats) {
		floor := FloorResponse{Floor: fg.Floor}
		for _, row := range fg.Rows {
			cells := make([]CellResponse, 0, len(row))
			for _, cell := range row {
				switch {
				case cell.Aisle:
					cells = append(cells, CellResponse{Aisle: true})
				case cell.Seat != nil:
					cells = append(cells, CellResponse{Seat: cell.Seat})
				default:
					cells = append(cells, CellResponse{Empty: true})
				}
			}
			floor.Rows = append(floor.Rows, cells)
		}
		resp.Floors = append(resp.Floors, floor)
	}

	return resp
}
