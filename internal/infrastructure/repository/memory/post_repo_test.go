package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
)

func TestPostRepository_ListNewestFirst(t *testing.T) {
	repo := NewPostRepository(SeedPosts())

	posts, total, err := repo.GetPosts(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, posts, 2)
	assert.Equal(t, "b1", posts[0].ID)
	assert.Equal(t, "b2", posts[1].ID)
}

func TestPostRepository_IncrementViewCount(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(SeedPosts())

	require.NoError(t, repo.IncrementViewCount(ctx, "ai-in-daily-work"))
	post, err := repo.GetPostByID(ctx, "b3")
	require.NoError(t, err)
	assert.Equal(t, 431, post.Views)

	assert.ErrorIs(t, repo.IncrementViewCount(ctx, "nope"), contract.ErrPostNotFound)
}

func TestPostRepository_Aggregates(t *testing.T) {
	ctx := context.Background()
	repo := NewPostRepository(SeedPosts())

	count, err := repo.CountPosts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	views, err := repo.SumViews(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2490, views)

	require.NoError(t, repo.DeletePost(ctx, "b2"))
	views, _ = repo.SumViews(ctx)
	assert.EqualValues(t, 1630, views)
}
