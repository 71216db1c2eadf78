package model

// BookingIntent is the best-effort structured interpretation of a free-text
// conversation. Every field except Category may be a synthesized default.
// Derived fresh from a transcript snapshot, never persisted.
type BookingIntent struct {
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Destination string   `json:"destination,omitempty"`
	Time        string   `json:"time"`
	SeatClass   string   `json:"seat_class"`
	Price       string   `json:"price"`
	SeatNumbers []string `json:"seat_numbers"`
	TicketCount int      `json:"ticket_count"`
}
