package cache_test

import (
	"context"
	"testing"

	"go-booking-assistant/internal/cache"
	"go-booking-assistant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - unknown session yields a fresh initial state", func(t *testing.T) {
		store := cache.NewMemorySessionStore()

		state, err := store.Get(ctx, "nope")

		require.NoError(t, err)
		assert.Equal(t, model.StepInitial, state.Step)
		assert.Nil(t, state.SelectedItem)
	})

	t.Run("Success - put then get round-trips", func(t *testing.T) {
		store := cache.NewMemorySessionStore()

		require.NoError(t, store.Put(ctx, "s1", &model.DialogState{
			Step:         model.StepSelectDate,
			Category:     model.CategoryMovie,
			SelectedDate: "Mon, Feb 5",
		}))

		state, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, model.StepSelectDate, state.Step)
		assert.Equal(t, model.CategoryMovie, state.Category)
		assert.Equal(t, "Mon, Feb 5", state.SelectedDate)
	})

	t.Run("Success - sessions are isolated", func(t *testing.T) {
		store := cache.NewMemorySessionStore()

		require.NoError(t, store.Put(ctx, "s1", &model.DialogState{Step: model.StepSelectItem}))

		other, err := store.Get(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, model.StepInitial, other.Step)
	})

	t.Run("Success - clear resets the session", func(t *testing.T) {
		store := cache.NewMemorySessionStore()

		require.NoError(t, store.Put(ctx, "s1", &model.DialogState{Step: model.StepSelectTime}))
		require.NoError(t, store.Clear(ctx, "s1"))

		state, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, model.StepInitial, state.Step)
	})

	t.Run("Success - mutating a returned state does not affect the store", func(t *testing.T) {
		store := cache.NewMemorySessionStore()

		require.NoError(t, store.Put(ctx, "s1", &model.DialogState{Step: model.StepSelectItem}))

		first, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		first.Step = model.StepSelectQuantity

		second, err := store.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, model.StepSelectItem, second.Step)
	})
}
