package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/validator"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
)

func newPostUseCase() (*PostUseCaseImpl, *memory.PostRepository) {
	repo := memory.NewPostRepository(memory.SeedPosts())
	return NewPostUseCase(repo, fixedUUID("fixed"), validator.NewValidator(), nopLogger{}, memory.DefaultAuthor), repo
}

func TestPostUseCase_ListPosts(t *testing.T) {
	uc, _ := newPostUseCase()

	posts, total, err := uc.ListPosts(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.NotEmpty(t, posts)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].PublishedAt.After(posts[i-1].PublishedAt))
	}
}

func TestPostUseCase_GetPostBySlugCountsView(t *testing.T) {
	uc, repo := newPostUseCase()
	ctx := context.Background()

	post, excerpt, err := uc.GetPostBySlug(ctx, "how-to-write-effective-prompts")

	require.NoError(t, err)
	assert.Equal(t, "b1", post.ID)
	assert.Equal(t, 1201, post.Views)
	assert.NotEmpty(t, excerpt)
	assert.NotContains(t, excerpt, "<")
	assert.LessOrEqual(t, len([]rune(excerpt)), utils.DefaultExcerptLength+3)

	stored, err := repo.GetPostBySlug(ctx, "how-to-write-effective-prompts")
	require.NoError(t, err)
	assert.Equal(t, 1201, stored.Views)
}

func TestPostUseCase_GetPostBySlugMissing(t *testing.T) {
	uc, _ := newPostUseCase()

	_, _, err := uc.GetPostBySlug(context.Background(), "nope")

	assert.ErrorIs(t, err, contract.ErrPostNotFound)
}

func TestPostUseCase_CreatePost(t *testing.T) {
	uc, repo := newPostUseCase()
	ctx := context.Background()

	post, err := uc.CreatePost(ctx, usecasecontract.CreatePostInput{
		Title:   "Prompt Basics",
		Content: "الفقرة الأولى\nالفقرة <الثانية>",
	})

	require.NoError(t, err)
	assert.Equal(t, "post-fixed", post.ID)
	assert.Equal(t, "prompt-basics", post.Slug)
	assert.Equal(t, "<p>الفقرة الأولى</p><p>الفقرة &lt;الثانية&gt;</p>", post.ContentHTML)
	assert.Equal(t, entity.ReactionCounts{}, post.Reactions)
	assert.Zero(t, post.Views)

	_, err = repo.GetPostBySlug(ctx, "prompt-basics")
	assert.NoError(t, err)
}

func TestPostUseCase_CreatePostFallsBackToIDSlug(t *testing.T) {
	uc, _ := newPostUseCase()

	post, err := uc.CreatePost(context.Background(), usecasecontract.CreatePostInput{
		Title:   "عنوان عربي",
		Content: "نص",
	})

	require.NoError(t, err)
	assert.Equal(t, post.ID, post.Slug)
}

func TestPostUseCase_CreatePostRejections(t *testing.T) {
	uc, _ := newPostUseCase()
	ctx := context.Background()

	_, err := uc.CreatePost(ctx, usecasecontract.CreatePostInput{Title: "", Content: "x"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CreatePost(ctx, usecasecontract.CreatePostInput{Title: "x", Content: strings.Repeat(" ", 3)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.CreatePost(ctx, usecasecontract.CreatePostInput{Title: "x", Content: "y", Slug: "how-to-write-effective-prompts"})
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestPostUseCase_ListPostsRejectsHugePage(t *testing.T) {
	uc, _ := newPostUseCase()

	_, _, err := uc.ListPosts(context.Background(), MaxPage+1, 10)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
