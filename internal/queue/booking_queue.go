package queue

import (
	"context"

	"go-booking-assistant/internal/model"
)

type Delivery struct {
	Data *model.BookingCompleted
	Ack  func()
	Nack func(requeue bool)
}

// BookingQueue carries completed-conversation snapshots from the chat service
// to the ticket worker.
type BookingQueue interface {
	PublishBooking(ctx context.Context, booking *model.BookingCompleted) error
	SubscribeBookings(ctx context.Context) (<-chan Delivery, error)
}

// MemoryBookingQueue backs the queue with a Go channel. Single-process only;
// the Redis Streams implementation is the one to deploy.
type MemoryBookingQueueImpl struct {
	ch chan *model.BookingCompleted
}

func NewMemoryBookingQueue(bufferSize int) BookingQueue {
	return &MemoryBookingQueueImpl{
		ch: make(chan *model.BookingCompleted, bufferSize),
	}
}

func (q *MemoryBookingQueueImpl) PublishBooking(ctx context.Context, booking *model.BookingCompleted) error {
	select {
	case q.ch <- booking:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (q *MemoryBookingQueueImpl) SubscribeBookings(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case booking, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: booking,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							q.ch <- booking
						}
					},
				}
			}
		}
	}()

	return out, nil
}
