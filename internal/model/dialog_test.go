package model_test

import (
	"testing"
	"time"

	"go-booking-assistant/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestStep_IsValid(t *testing.T) {
	valid := []model.Step{
		model.StepInitial, model.StepSelectItem, model.StepSelectDate,
		model.StepSelectTime, model.StepSelectSeatType, model.StepSelectQuantity,
	}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "step %s should be valid", s)
	}
	assert.False(t, model.Step("checkout").IsValid())
	assert.False(t, model.Step("").IsValid())
}

func TestStep_CanTransitionTo(t *testing.T) {
	order := []model.Step{
		model.StepInitial, model.StepSelectItem, model.StepSelectDate,
		model.StepSelectTime, model.StepSelectSeatType, model.StepSelectQuantity,
	}

	t.Run("Success - strict forward ordering", func(t *testing.T) {
		for i := 0; i < len(order)-1; i++ {
			assert.True(t, order[i].CanTransitionTo(order[i+1]),
				"%s -> %s should be allowed", order[i], order[i+1])
		}
		assert.True(t, model.StepSelectQuantity.CanTransitionTo(model.StepInitial))
	})

	t.Run("Success - self and initial always reachable", func(t *testing.T) {
		for _, s := range order {
			assert.True(t, s.CanTransitionTo(s))
			assert.True(t, s.CanTransitionTo(model.StepInitial))
		}
	})

	t.Run("Failed - no step skipping", func(t *testing.T) {
		for i := 0; i < len(order); i++ {
			for j := i + 2; j < len(order); j++ {
				assert.False(t, order[i].CanTransitionTo(order[j]),
					"%s -> %s must not skip", order[i], order[j])
			}
		}
	})
}

func TestCatalogItem_Label(t *testing.T) {
	movie := model.CatalogItem{Category: model.CategoryMovie, Title: "Dune"}
	trip := model.CatalogItem{Category: model.CategoryTravel, Destination: "Paris"}

	assert.Equal(t, "Dune", movie.Label())
	assert.Equal(t, "Paris", trip.Label())
}

func TestCatalogItem_DateOptions(t *testing.T) {
	now := time.Date(2024, 2, 5, 12, 0, 0, 0, time.UTC)

	t.Run("Success - movies get the next 5 days", func(t *testing.T) {
		movie := model.CatalogItem{Category: model.CategoryMovie, Title: "Dune"}
		dates := movie.DateOptions(now)

		assert.Len(t, dates, 5)
		assert.Equal(t, "Mon, Feb 5", dates[0])
		assert.Equal(t, "Fri, Feb 9", dates[4])
	})

	t.Run("Success - events use catalog dates", func(t *testing.T) {
		event := model.CatalogItem{Category: model.CategoryEvent, Dates: []string{"2024-02-15"}}
		assert.Equal(t, []string{"2024-02-15"}, event.DateOptions(now))
	})

	t.Run("Success - today as singleton fallback", func(t *testing.T) {
		event := model.CatalogItem{Category: model.CategoryEvent}
		assert.Equal(t, []string{"Mon, Feb 5"}, event.DateOptions(now))
	})
}

func TestCatalogItem_TimeOptions(t *testing.T) {
	withTimes := model.CatalogItem{ShowTimes: []string{"11:00", "14:00"}}
	assert.Equal(t, []string{"11:00", "14:00"}, withTimes.TimeOptions())

	without := model.CatalogItem{}
	assert.Equal(t, []string{"10:00 AM", "2:00 PM", "6:00 PM", "9:00 PM"}, without.TimeOptions())
}

func TestCatalogItem_SeatClassKeys(t *testing.T) {
	item := model.CatalogItem{SeatClasses: map[string]string{
		"vip":     "VIP",
		"general": "General",
		"premium": "Premium",
	}}
	assert.Equal(t, []string{"general", "premium", "vip"}, item.SeatClassKeys())
}
