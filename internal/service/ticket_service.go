package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/repository"
	"go-booking-assistant/pkg/logger"

	"go.uber.org/zap"
)

// TicketService materializes tickets from booking intents. Synthesize is
// total: when the catalog yields no match (or cannot be read) it falls back
// to a ticket built from the intent's own fields, so a completed conversation
// always ends in a visible artifact.
type TicketService interface {
	Synthesize(ctx context.Context, intent *model.BookingIntent) *model.Ticket
	// IssueFromTranscript runs extraction and synthesis over a completed
	// conversation and persists the result. Returns (nil, nil) when the
	// transcript carries no recognizable booking.
	IssueFromTranscript(ctx context.Context, sessionID string, transcript []model.TranscriptEntry) (*model.Ticket, error)
}

type TicketServiceImpl struct {
	catalog    repository.CatalogRepository
	tickets    repository.TicketRepository
	extraction ExtractionService
}

func NewTicketService(catalog repository.CatalogRepository, tickets repository.TicketRepository, extraction ExtractionService) TicketService {
	return &TicketServiceImpl{catalog: catalog, tickets: tickets, extraction: extraction}
}

func (s *TicketServiceImpl) IssueFromTranscript(ctx context.Context, sessionID string, transcript []model.TranscriptEntry) (*model.Ticket, error) {
	intent := s.extraction.Extract(transcript)
	if intent == nil {
		logger.WithComponent("service").Warn("no booking intent in transcript", zap.String("session_id", sessionID))
		return nil, nil
	}

	ticket := s.Synthesize(ctx, intent)
	ticket.SessionID = sessionID

	created, err := s.tickets.Create(ctx, ticket)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TicketServiceImpl) Synthesize(ctx context.Context, intent *model.BookingIntent) *model.Ticket {
	item := s.lookup(ctx, intent)
	if item == nil {
		return fallbackTicket(intent)
	}

	seatKey := resolveSeatClass(item, intent.SeatClass)

	return &model.Ticket{
		TicketNumber:   newTicketNumber(),
		Category:       intent.Category,
		ItemLabel:      item.Label(),
		Time:           resolveTime(item, intent.Time),
		SeatClassLabel: item.SeatClasses[seatKey],
		SeatNumbers:    resolveSeatNumbers(intent.SeatNumbers),
		UnitPrice:      fmt.Sprintf("$%.2f", item.Pricing[seatKey]),
	}
}

// lookup finds the first catalog item fuzzily matching the intent's name, or
// destination for travel.
func (s *TicketServiceImpl) lookup(ctx context.Context, intent *model.BookingIntent) *model.CatalogItem {
	query := intent.Name
	if intent.Category == model.CategoryTravel && intent.Destination != "" {
		query = intent.Destination
	}

	matches, err := s.catalog.Search(ctx, intent.Category, query)
	if err != nil {
		logger.WithComponent("service").Warn("catalog lookup failed, falling back", zap.Error(err))
		return nil
	}
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// resolveSeatClass matches the extracted hint against the item's class keys,
// then falls through the category's priority order, then the category
// default.
func resolveSeatClass(item *model.CatalogItem, hint string) string {
	lowerHint := strings.ToLower(hint)
	keys := item.SeatClassKeys()

	for _, key := range keys {
		if lowerHint != "" && strings.Contains(lowerHint, strings.ToLower(key)) {
			return key
		}
	}

	profile := item.Category.Profile()
	for _, key := range profile.SeatPriority {
		if _, ok := item.SeatClasses[key]; ok {
			return key
		}
	}

	if _, ok := item.SeatClasses[profile.DefaultSeatKey]; ok {
		return profile.DefaultSeatKey
	}
	return keys[0]
}

func resolveTime(item *model.CatalogItem, hint string) string {
	switch item.Category {
	case model.CategoryMovie:
		if hint != "" {
			for _, t := range item.ShowTimes {
				if t == hint || strings.HasPrefix(t, hint) {
					return t
				}
			}
		}
		if len(item.ShowTimes) > 0 {
			return item.ShowTimes[0]
		}
		return "10:00 AM"
	case model.CategoryEvent:
		if item.Time != "" {
			return item.Time
		}
	}
	if hint != "" {
		return hint
	}
	return "10:00 AM"
}

func resolveSeatNumbers(seats []string) []string {
	if len(seats) > 0 {
		return seats
	}
	return []string{"A1", "A2", "A3", "A4"}
}

// fallbackTicket covers the CatalogMiss path with the intent's own fields and
// documented defaults.
func fallbackTicket(intent *model.BookingIntent) *model.Ticket {
	label := intent.Name
	if intent.Category == model.CategoryTravel && intent.Destination != "" {
		label = intent.Destination
	}

	timeSlot := intent.Time
	if timeSlot == "" {
		timeSlot = "10:00 AM"
	}
	seatClass := intent.SeatClass
	if seatClass == "" {
		seatClass = "Standard Seating"
	}
	price := intent.Price
	if price == "" {
		price = "$50.00"
	}

	return &model.Ticket{
		TicketNumber:   newTicketNumber(),
		Category:       intent.Category,
		ItemLabel:      label,
		Time:           timeSlot,
		SeatClassLabel: seatClass,
		SeatNumbers:    resolveSeatNumbers(intent.SeatNumbers),
		UnitPrice:      price,
	}
}

// newTicketNumber returns a 6-digit zero-padded random string. No global
// uniqueness guarantee.
func newTicketNumber() string {
	return fmt.Sprintf("%06d", rand.IntN(1000000))
}
