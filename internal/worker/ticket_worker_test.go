package worker_test

import (
	"context"
	"testing"
	"time"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/queue"
	"go-booking-assistant/internal/repository"
	"go-booking-assistant/internal/service"
	"go-booking-assistant/internal/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketWorker_Start(t *testing.T) {
	newWorker := func(repo repository.TicketRepository, bookings queue.BookingQueue) worker.TicketWorker {
		tickets := service.NewTicketService(
			repository.NewStaticCatalogRepository(),
			repo,
			service.NewExtractionService(),
		)
		return worker.NewTicketWorker(tickets, bookings)
	}

	t.Run("Success - consumed booking becomes an issued ticket", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := repository.NewMemoryTicketRepository()
		bookings := queue.NewMemoryBookingQueue(4)
		require.NoError(t, newWorker(repo, bookings).Start(ctx))

		require.NoError(t, bookings.PublishBooking(ctx, &model.BookingCompleted{
			SessionID: "s1",
			Transcript: []model.TranscriptEntry{
				{Text: "a movie ticket for dune at 14:00", IsUser: true},
				{Text: "vip please", IsUser: true},
			},
			CompletedAt: time.Now(),
		}))

		assert.Eventually(t, func() bool {
			tickets, err := repo.List(ctx)
			return err == nil && len(tickets) == 1
		}, time.Second, 10*time.Millisecond)

		tickets, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s1", tickets[0].SessionID)
		assert.Equal(t, "Dune", tickets[0].ItemLabel)
		assert.Equal(t, "VIP Recliner with Food Service", tickets[0].SeatClassLabel)
	})

	t.Run("Success - booking without intent is acked and dropped", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		repo := repository.NewMemoryTicketRepository()
		bookings := queue.NewMemoryBookingQueue(4)
		require.NoError(t, newWorker(repo, bookings).Start(ctx))

		require.NoError(t, bookings.PublishBooking(ctx, &model.BookingCompleted{
			SessionID:  "s2",
			Transcript: []model.TranscriptEntry{{Text: "hello", IsUser: true}},
		}))

		require.NoError(t, bookings.PublishBooking(ctx, &model.BookingCompleted{
			SessionID:  "s3",
			Transcript: []model.TranscriptEntry{{Text: "an event please", IsUser: true}},
		}))

		assert.Eventually(t, func() bool {
			tickets, err := repo.List(ctx)
			return err == nil && len(tickets) == 1
		}, time.Second, 10*time.Millisecond)

		tickets, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, "s3", tickets[0].SessionID)
	})
}
