package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// ReactionState is the reaction affordance shown on a post card.
// UserReaction is nil when the visitor has not reacted.
type ReactionState struct {
	PostID       string                `json:"post_id"`
	Reactions    entity.ReactionCounts `json:"reactions"`
	UserReaction *entity.ReactionType  `json:"user_reaction"`
}

type IReactionUseCase interface {
	GetReactionState(ctx context.Context, visitorID, postID string) (ReactionState, error)
	React(ctx context.Context, visitorID, postID string, reaction entity.ReactionType) (ReactionState, error)
}
