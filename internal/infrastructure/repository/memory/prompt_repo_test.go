package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

func ids(prompts []*entity.Prompt) []string {
	out := make([]string, len(prompts))
	for i, p := range prompts {
		out[i] = p.ID
	}
	return out
}

func TestPromptRepository_Search(t *testing.T) {
	repo := NewPromptRepository(SeedPrompts())

	prompts, total, err := repo.GetPrompts(context.Background(), &contract.PromptFilterOptions{Search: "sql"})

	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, []string{"p5"}, ids(prompts))
}

func TestPromptRepository_LevelFilter(t *testing.T) {
	repo := NewPromptRepository(SeedPrompts())

	prompts, total, err := repo.GetPrompts(context.Background(), &contract.PromptFilterOptions{
		Level:  entity.PromptLevelBeginner,
		SortBy: contract.PromptSortOldest,
	})

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []string{"p3", "p1", "p8"}, ids(prompts))
}

func TestPromptRepository_PaginationPastEnd(t *testing.T) {
	repo := NewPromptRepository(SeedPrompts())

	prompts, total, err := repo.GetPrompts(context.Background(), &contract.PromptFilterOptions{Page: 5, PageSize: 4})

	require.NoError(t, err)
	assert.EqualValues(t, 8, total)
	assert.Empty(t, prompts)
}

func TestPromptRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewPromptRepository(SeedPrompts())

	p, err := repo.GetPromptByID(ctx, "p1")
	require.NoError(t, err)
	p.Likes = 999
	p.Tags[0] = "changed"

	again, err := repo.GetPromptByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, again.Likes)
	assert.NotEqual(t, "changed", again.Tags[0])
}

func TestPromptRepository_Mutations(t *testing.T) {
	ctx := context.Background()
	repo := NewPromptRepository(SeedPrompts())

	require.NoError(t, repo.CreatePrompt(ctx, &entity.Prompt{ID: "new", Slug: "new-slug", Likes: 3}))
	exists, err := repo.SlugExists(ctx, "new-slug")
	require.NoError(t, err)
	assert.True(t, exists)

	verified, err := repo.SetVerified(ctx, "new", true)
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	count, _ := repo.CountPrompts(ctx)
	assert.EqualValues(t, 9, count)
	likes, _ := repo.SumLikes(ctx)
	assert.EqualValues(t, 153, likes)

	require.NoError(t, repo.DeletePrompt(ctx, "new"))
	assert.ErrorIs(t, repo.DeletePrompt(ctx, "new"), contract.ErrPromptNotFound)
	_, err = repo.SetVerified(ctx, "new", false)
	assert.ErrorIs(t, err, contract.ErrPromptNotFound)
}

func TestPromptRepository_GetPromptsByIDs(t *testing.T) {
	repo := NewPromptRepository(SeedPrompts())

	prompts, err := repo.GetPromptsByIDs(context.Background(), []string{"p8", "missing", "p2"})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"p2", "p8"}, ids(prompts))
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, paginate(items, 0, 2))
	assert.Equal(t, []int{5}, paginate(items, 3, 2))
	assert.Equal(t, items, paginate(items, 1, 0))
	assert.Empty(t, paginate(items, 4, 2))
	assert.Empty(t, paginate(items, 100000000000000000, 100))
}

func TestPromptRepository_HugePageIsEmpty(t *testing.T) {
	repo := NewPromptRepository(SeedPrompts())

	var prompts []*entity.Prompt
	var total int64
	assert.NotPanics(t, func() {
		prompts, total, _ = repo.GetPrompts(context.Background(), &contract.PromptFilterOptions{Page: 100000000000000000, PageSize: 100})
	})

	assert.EqualValues(t, 8, total)
	assert.Empty(t, prompts)
}
