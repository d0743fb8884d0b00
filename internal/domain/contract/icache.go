package contract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// IContentCache caches content items looked up for baseline counts.
// A miss is reported with found=false and a nil error.
type IContentCache interface {
	GetPrompt(ctx context.Context, id string) (*entity.Prompt, bool, error)
	SetPrompt(ctx context.Context, prompt *entity.Prompt) error
	InvalidatePrompt(ctx context.Context, id string) error

	GetPost(ctx context.Context, id string) (*entity.Post, bool, error)
	SetPost(ctx context.Context, post *entity.Post) error
	InvalidatePost(ctx context.Context, id string) error
}
