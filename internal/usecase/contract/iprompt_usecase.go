package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// CreatePromptInput carries a visitor's prompt submission.
type CreatePromptInput struct {
	Title         string
	Slug          string
	PromptText    string
	Category      entity.PromptCategory
	Level         entity.PromptLevel
	Language      entity.PromptLanguage
	Tags          []string
	Examples      []string
	Tips          []string
	IsAIGenerated bool
	Visibility    entity.PromptVisibility
}

type IPromptUseCase interface {
	ListPrompts(ctx context.Context, opts contract.PromptFilterOptions) ([]*entity.Prompt, int64, error)
	GetPrompt(ctx context.Context, id string) (*entity.Prompt, error)
	GetRelatedPrompts(ctx context.Context, id string) ([]*entity.Prompt, error)
	CreatePrompt(ctx context.Context, input CreatePromptInput) (*entity.Prompt, error)
	CheckSlug(ctx context.Context, slug string) (unique bool, suggestion string, err error)
}
