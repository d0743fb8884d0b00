package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// ErrPromptNotFound is returned when no prompt matches the lookup.
var ErrPromptNotFound = errors.New("prompt not found")

// PromptSort selects the ordering of prompt listings.
type PromptSort string

const (
	PromptSortNewest       PromptSort = "newest"
	PromptSortOldest       PromptSort = "oldest"
	PromptSortAlphabetical PromptSort = "alphabetical"
)

// PromptFilterOptions encapsulates filtering, pagination, and sorting parameters for prompt retrieval.
type PromptFilterOptions struct {
	Search     string
	Categories []entity.PromptCategory
	Level      entity.PromptLevel // empty means all levels
	Languages  []entity.PromptLanguage
	SortBy     PromptSort
	Page       int
	PageSize   int
}

// IPromptRepository is the prompt data source.
type IPromptRepository interface {
	CreatePrompt(ctx context.Context, prompt *entity.Prompt) error
	GetPromptByID(ctx context.Context, id string) (*entity.Prompt, error)
	GetPromptsByIDs(ctx context.Context, ids []string) ([]*entity.Prompt, error)
	GetPrompts(ctx context.Context, opts *PromptFilterOptions) ([]*entity.Prompt, int64, error)
	// GetPromptsByCategory returns every prompt in a category, used for related-prompt scoring.
	GetPromptsByCategory(ctx context.Context, category entity.PromptCategory) ([]*entity.Prompt, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	SetVerified(ctx context.Context, id string, verified bool) (*entity.Prompt, error)
	DeletePrompt(ctx context.Context, id string) error
	CountPrompts(ctx context.Context) (int64, error)
	SumLikes(ctx context.Context) (int64, error)
}
