package model

import "time"

// Ticket is the final catalog-resolved artifact for one completed booking.
// Ticket numbers are 6-digit zero-padded random strings with no global
// uniqueness guarantee.
type Ticket struct {
	ID             int       `json:"id,omitempty"`
	TicketNumber   string    `json:"ticket_number"`
	Category       Category  `json:"category"`
	ItemLabel      string    `json:"item"`
	Time           string    `json:"time"`
	SeatClassLabel string    `json:"seat_class"`
	SeatNumbers    []string  `json:"seat_numbers"`
	UnitPrice      string    `json:"price"`
	SessionID      string    `json:"session_id,omitempty"`
	IssuedAt       time.Time `json:"issued_at,omitempty"`
}
