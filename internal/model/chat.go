package model

import "time"

// TurnRequest is one inbound utterance. SessionID is caller-supplied and must
// stay stable for the life of one booking conversation; when blank the server
// generates one and echoes it back.
type TurnRequest struct {
	Message   string `json:"message" binding:"required"`
	SessionID string `json:"session_id"`
}

// Option is one selectable answer attached to a reply. Plain string answers
// (dates, times, quantities) carry only Title.
type Option struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	Price       float64 `json:"price,omitempty"`
	Description string  `json:"description,omitempty"`
}

// TurnReply is the structured answer to one turn. Absence of options implies
// a free-text reply is expected.
type TurnReply struct {
	Message   string   `json:"message"`
	Options   []Option `json:"options,omitempty"`
	SessionID string   `json:"session_id,omitempty"`
}

// TranscriptEntry is one turn of the conversation, newest last.
type TranscriptEntry struct {
	Text   string `json:"text"`
	IsUser bool   `json:"is_user"`
}

// BookingCompleted is published to the booking queue when a conversation
// reaches its confirmation turn. The transcript is a frozen snapshot.
type BookingCompleted struct {
	SessionID   string            `json:"session_id"`
	Transcript  []TranscriptEntry `json:"transcript"`
	CompletedAt time.Time         `json:"completed_at"`
}
