package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/store"
)

func TestPromptLikeTracker_ToggleTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	tracker := NewPromptLikeTracker(NewLikeStore(kv, nopLogger{}))

	tracker.Sync(ctx, "p1", 10)
	assert.False(t, tracker.IsLiked())
	assert.Equal(t, 10, tracker.LikeCount())

	state := tracker.ToggleLike(ctx)
	assert.True(t, state.IsLiked)
	assert.Equal(t, 11, state.LikeCount)
	raw, found, err := kv.Get(ctx, LikedPromptsKey)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `["p1"]`, raw)

	state = tracker.ToggleLike(ctx)
	assert.False(t, state.IsLiked)
	assert.Equal(t, 10, state.LikeCount)
	raw, _, _ = kv.Get(ctx, LikedPromptsKey)
	assert.JSONEq(t, `[]`, raw)
}

func TestPromptLikeTracker_SyncSamePairKeepsCounter(t *testing.T) {
	ctx := context.Background()
	tracker := NewPromptLikeTracker(NewLikeStore(store.NewMemoryStore(), nopLogger{}))

	tracker.Sync(ctx, "p1", 10)
	tracker.ToggleLike(ctx)
	tracker.Sync(ctx, "p1", 10)

	assert.Equal(t, 11, tracker.LikeCount())
	assert.True(t, tracker.IsLiked())
}

func TestPromptLikeTracker_ReseedsOnIdentifierChange(t *testing.T) {
	ctx := context.Background()
	tracker := NewPromptLikeTracker(NewLikeStore(store.NewMemoryStore(), nopLogger{}))

	tracker.Sync(ctx, "p1", 10)
	tracker.ToggleLike(ctx)

	tracker.Sync(ctx, "p2", 22)
	assert.False(t, tracker.IsLiked())
	assert.Equal(t, 22, tracker.LikeCount())

	// Membership is persisted, the counter is not.
	tracker.Sync(ctx, "p1", 10)
	assert.True(t, tracker.IsLiked())
	assert.Equal(t, 10, tracker.LikeCount())
}

func TestPromptLikeTracker_ReseedsOnBaselineChange(t *testing.T) {
	ctx := context.Background()
	tracker := NewPromptLikeTracker(NewLikeStore(store.NewMemoryStore(), nopLogger{}))

	tracker.Sync(ctx, "p1", 10)
	tracker.ToggleLike(ctx)
	tracker.Sync(ctx, "p1", 15)

	assert.True(t, tracker.IsLiked())
	assert.Equal(t, 15, tracker.LikeCount())
}

func TestPromptLikeTracker_EmptyIDIsNoop(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	tracker := NewPromptLikeTracker(NewLikeStore(kv, nopLogger{}))

	state := tracker.ToggleLike(ctx)
	assert.False(t, state.IsLiked)
	assert.Equal(t, 0, state.LikeCount)
	_, found, _ := kv.Get(ctx, LikedPromptsKey)
	assert.False(t, found)
}

func TestPromptLikeTracker_StorageFailureKeepsMemoryState(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	kv.SetFailures(true, true)
	tracker := NewPromptLikeTracker(NewLikeStore(kv, nopLogger{}))

	tracker.Sync(ctx, "p1", 10)
	state := tracker.ToggleLike(ctx)
	assert.True(t, state.IsLiked)
	assert.Equal(t, 11, state.LikeCount)

	state = tracker.ToggleLike(ctx)
	assert.False(t, state.IsLiked)
	assert.Equal(t, 10, state.LikeCount)
}

func TestLikeStore_ReadFailureKeepsLastKnownSet(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	likes := NewLikeStore(kv, nopLogger{})

	likes.SetLiked(ctx, "p1", true)
	kv.SetFailures(true, false)

	assert.True(t, likes.IsLiked(ctx, "p1"))
	assert.Equal(t, []string{"p1"}, likes.LikedIDs(ctx))
}

func TestLikeStore_CorruptBlobIsIgnored(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, LikedPromptsKey, "{not json"))
	likes := NewLikeStore(kv, nopLogger{})

	assert.False(t, likes.IsLiked(ctx, "p1"))
	likes.SetLiked(ctx, "p1", true)

	raw, _, _ := kv.Get(ctx, LikedPromptsKey)
	assert.JSONEq(t, `["p1"]`, raw)
}

func TestLikeStore_ReadsBrowserLayout(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, LikedPromptsKey, `["p3","p1","p3"]`))
	likes := NewLikeStore(kv, nopLogger{})

	assert.True(t, likes.IsLiked(ctx, "p1"))
	assert.Equal(t, []string{"p3", "p1"}, likes.LikedIDs(ctx))
	assert.False(t, likes.IsLiked(ctx, ""))
}
