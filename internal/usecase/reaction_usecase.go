package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// ReactionUsecase serves the reaction affordance of post cards for each visitor.
type ReactionUsecase struct {
	sessions *SessionRegistry
	lookup   *contentLookup
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

func NewReactionUsecase(sessions *SessionRegistry, postRepo contract.IPostRepository, cache contract.IContentCache, logger usecasecontract.IAppLogger) *ReactionUsecase {
	return &ReactionUsecase{
		sessions: sessions,
		lookup:   &contentLookup{postRepo: postRepo, cache: cache, logger: logger},
		logger:   logger,
	}
}

// GetReactionState returns the post's counts as seen by the visitor and the
// visitor's own reaction.
func (u *ReactionUsecase) GetReactionState(ctx context.Context, visitorID, postID string) (usecasecontract.ReactionState, error) {
	if visitorID == "" || postID == "" {
		return usecasecontract.ReactionState{PostID: postID}, nil
	}
	post, err := u.lookup.post(ctx, postID)
	if err != nil {
		return usecasecontract.ReactionState{}, fmt.Errorf("failed to load post %s: %w", postID, err)
	}

	session := u.sessions.Session(visitorID)
	session.mu.Lock()
	defer session.mu.Unlock()

	card := session.reactionCard(postID)
	card.Sync(ctx, postID, post.Reactions)
	return card.State(), nil
}

// React applies the visitor's reaction to a post.
func (u *ReactionUsecase) React(ctx context.Context, visitorID, postID string, reaction entity.ReactionType) (usecasecontract.ReactionState, error) {
	if !reaction.IsValid() {
		return usecasecontract.ReactionState{}, ErrInvalidReaction
	}
	if visitorID == "" || postID == "" {
		return usecasecontract.ReactionState{PostID: postID}, nil
	}
	post, err := u.lookup.post(ctx, postID)
	if err != nil {
		return usecasecontract.ReactionState{}, fmt.Errorf("failed to load post %s: %w", postID, err)
	}

	session := u.sessions.Session(visitorID)
	session.mu.Lock()
	defer session.mu.Unlock()

	card := session.reactionCard(postID)
	card.Sync(ctx, postID, post.Reactions)
	branch, err := card.React(ctx, reaction)
	if err != nil {
		return usecasecontract.ReactionState{}, err
	}
	metrics.IncReaction(branch)
	u.logger.Debugf("visitor=%s post=%s reaction=%s branch=%s", visitorID, postID, reaction, branch)
	return card.State(), nil
}
