package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// LikeState is the like affordance shown on a prompt card.
type LikeState struct {
	PromptID  string `json:"prompt_id"`
	IsLiked   bool   `json:"is_liked"`
	LikeCount int    `json:"like_count"`
}

type ILikeUseCase interface {
	GetLikeState(ctx context.Context, visitorID, promptID string) (LikeState, error)
	ToggleLike(ctx context.Context, visitorID, promptID string) (LikeState, error)
	GetLikedPrompts(ctx context.Context, visitorID string) ([]*entity.Prompt, error)
}
