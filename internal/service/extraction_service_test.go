package service_test

import (
	"fmt"
	"testing"
	"time"

	"go-booking-assistant/internal/model"
	"go-booking-assistant/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() func() time.Time {
	at := time.Date(2024, 2, 5, 15, 4, 5, 0, time.UTC)
	return func() time.Time { return at }
}

func user(text string) model.TranscriptEntry {
	return model.TranscriptEntry{Text: text, IsUser: true}
}

func bot(text string) model.TranscriptEntry {
	return model.TranscriptEntry{Text: text, IsUser: false}
}

func TestExtractionService_Extract(t *testing.T) {
	extraction := service.NewExtractionServiceWithClock(fixedClock())

	t.Run("Success - movie transcript yields name, time, seat and price", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("I want to book a movie"),
			bot("Great! Here are the available movies:"),
			user("a movie ticket for dune at 14:00"),
			user("vip please"),
			user("the price is 27.99"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, model.CategoryMovie, intent.Category)
		assert.Equal(t, "dune", intent.Name)
		assert.Equal(t, "14:00", intent.Time)
		assert.Equal(t, "vip", intent.SeatClass)
		assert.Equal(t, "$27.99", intent.Price)
		assert.Equal(t, 1, intent.TicketCount)
		assert.Equal(t, []string{"A1"}, intent.SeatNumbers)
	})

	t.Run("Success - travel transcript fills destination", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("travel to paris at 10:00 am"),
			user("business class please"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, model.CategoryTravel, intent.Category)
		assert.Equal(t, "paris", intent.Name)
		assert.Equal(t, "paris", intent.Destination)
		assert.Equal(t, "10:00 am", intent.Time)
		assert.Equal(t, "business", intent.SeatClass)
	})

	t.Run("Success - unextractable fields get defaults", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("book an event"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, model.CategoryEvent, intent.Category)
		assert.Equal(t, "Unnamed Event", intent.Name)
		assert.Equal(t, "3:04:05 PM", intent.Time)
		assert.Equal(t, "standard", intent.SeatClass)
		assert.Equal(t, "$50.00", intent.Price)
	})

	t.Run("Success - price without dollar sign is normalized", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("a movie"),
			user("cost is 30"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, "$30", intent.Price)
	})

	t.Run("Success - bot turns set the category but never fill fields", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			bot("movie is inception at 18:00"),
			user("I want an event"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, model.CategoryEvent, intent.Category)
		assert.Equal(t, "Unnamed Event", intent.Name)
		assert.Equal(t, "3:04:05 PM", intent.Time)
	})

	t.Run("Success - newest category keyword wins", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("a movie sounds nice"),
			user("actually, travel"),
		})

		require.NotNil(t, intent)
		assert.Equal(t, model.CategoryTravel, intent.Category)
	})

	t.Run("Success - repeated extraction over the same transcript is identical", func(t *testing.T) {
		transcript := []model.TranscriptEntry{
			user("a movie ticket for dune at 14:00"),
			user("premium please"),
		}

		first := extraction.Extract(transcript)
		second := extraction.Extract(transcript)

		require.NotNil(t, first)
		assert.Equal(t, first, second)
	})

	t.Run("Failed - no category keyword yields nil", func(t *testing.T) {
		intent := extraction.Extract([]model.TranscriptEntry{
			user("hello"),
			user("what can you do?"),
		})

		assert.Nil(t, intent)
	})

	t.Run("Failed - category keyword outside the window is ignored", func(t *testing.T) {
		transcript := []model.TranscriptEntry{user("I want to book a movie")}
		for i := 0; i < 10; i++ {
			transcript = append(transcript, user(fmt.Sprintf("hmm %d", i)))
		}

		assert.Nil(t, extraction.Extract(transcript))
	})
}
