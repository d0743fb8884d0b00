package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/store"
)

func TestPostReactionTracker_UnusualStoredValues(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"null", `null`, `{"b1":"heart"}`},
		{"empty object", `{}`, `{"b1":"heart"}`},
		{"array", `[]`, `{"b1":"heart"}`},
		{"string", `"heart"`, `{"b1":"heart"}`},
		{"unknown tag", `{"b1":"like"}`, `{"b1":"heart"}`},
		{"other posts kept", `{"b2":"fire"}`, `{"b1":"heart","b2":"fire"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Set(ctx, UserPostReactionsKey, tt.stored))
			tracker := NewPostReactionTracker(NewReactionStore(kv, nopLogger{}))

			var branch string
			assert.NotPanics(t, func() {
				tracker.Sync(ctx, "b1", b1Baseline)
				branch, _ = tracker.React(ctx, entity.ReactionHeart)
			})

			assert.Equal(t, ReactionBranchAdd, branch)
			assert.Equal(t, 6, tracker.Counts().Heart)
			raw, _, err := kv.Get(ctx, UserPostReactionsKey)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, raw)

			branch, _ = tracker.React(ctx, entity.ReactionHeart)
			assert.Equal(t, ReactionBranchRemove, branch)
		})
	}
}

func TestPromptLikeTracker_UnusualStoredValues(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{"null", `null`, `["p1"]`},
		{"empty array", `[]`, `["p1"]`},
		{"object", `{}`, `["p1"]`},
		{"numbers", `[1,2]`, `["p1"]`},
		{"empty ids dropped", `["","p2"]`, `["p2","p1"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kv := store.NewMemoryStore()
			require.NoError(t, kv.Set(ctx, LikedPromptsKey, tt.stored))
			tracker := NewPromptLikeTracker(NewLikeStore(kv, nopLogger{}))

			assert.NotPanics(t, func() {
				tracker.Sync(ctx, "p1", 10)
				tracker.ToggleLike(ctx)
			})

			assert.True(t, tracker.IsLiked())
			assert.Equal(t, 11, tracker.LikeCount())
			raw, _, err := kv.Get(ctx, LikedPromptsKey)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, raw)
		})
	}
}
