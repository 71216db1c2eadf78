package worker

import (
	"context"

	"go-booking-assistant/internal/queue"
	"go-booking-assistant/internal/service"
	"go-booking-assistant/pkg/logger"

	"go.uber.org/zap"
)

// TicketWorker drains the booking queue and turns completed conversations
// into issued tickets.
type TicketWorker interface {
	Start(ctx context.Context) error
}

type TicketWorkerImpl struct {
	tickets service.TicketService
	queue   queue.BookingQueue
}

func NewTicketWorker(tickets service.TicketService, queue queue.BookingQueue) TicketWorker {
	return &TicketWorkerImpl{
		tickets: tickets,
		queue:   queue,
	}
}

func (w *TicketWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.SubscribeBookings(ctx)
	if err != nil {
		return err
	}

	go func() {
		log := logger.WithComponent("worker")
		for msg := range msgs {
			booking := msg.Data
			ticket, err := w.tickets.IssueFromTranscript(ctx, booking.SessionID, booking.Transcript)
			if err != nil {
				// Synthesis is total, so only persistence fails here; retry.
				log.Error("issue ticket failed", zap.String("session_id", booking.SessionID), zap.Error(err))
				msg.Nack(true)
				continue
			}

			if ticket == nil {
				log.Warn("booking without extractable intent", zap.String("session_id", booking.SessionID))
			} else {
				log.Info("ticket issued",
					zap.String("session_id", booking.SessionID),
					zap.String("ticket_number", ticket.TicketNumber),
					zap.String("item", ticket.ItemLabel),
				)
			}
			msg.Ack()
		}
	}()
	return nil
}
