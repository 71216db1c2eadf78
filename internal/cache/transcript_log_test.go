package cache_test

import (
	"context"
	"fmt"
	"testing"

	"go-booking-assistant/internal/cache"
	"go-booking-assistant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTranscriptLog(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - entries come back oldest first", func(t *testing.T) {
		log := cache.NewMemoryTranscriptLog()

		require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: "hi", IsUser: true}))
		require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: "hello", IsUser: false}))

		entries, err := log.Window(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "hi", entries[0].Text)
		assert.True(t, entries[0].IsUser)
		assert.Equal(t, "hello", entries[1].Text)
	})

	t.Run("Success - log is capped, oldest entries dropped", func(t *testing.T) {
		log := cache.NewMemoryTranscriptLog()

		for i := 0; i < 25; i++ {
			require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: fmt.Sprintf("turn %d", i)}))
		}

		entries, err := log.Window(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, entries, 20)
		assert.Equal(t, "turn 5", entries[0].Text)
		assert.Equal(t, "turn 24", entries[19].Text)
	})

	t.Run("Success - sessions have independent logs", func(t *testing.T) {
		log := cache.NewMemoryTranscriptLog()

		require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: "only s1"}))

		entries, err := log.Window(ctx, "s2")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Success - clear empties the log", func(t *testing.T) {
		log := cache.NewMemoryTranscriptLog()

		require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: "hi"}))
		require.NoError(t, log.Clear(ctx, "s1"))

		entries, err := log.Window(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Success - mutating the returned window does not affect the log", func(t *testing.T) {
		log := cache.NewMemoryTranscriptLog()

		require.NoError(t, log.Append(ctx, "s1", model.TranscriptEntry{Text: "hi"}))

		first, err := log.Window(ctx, "s1")
		require.NoError(t, err)
		first[0].Text = "changed"

		second, err := log.Window(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "hi", second[0].Text)
	})
}
