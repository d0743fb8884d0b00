package usecase

import (
	"context"
	"fmt"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// LikeUsecase serves the like affordance of prompt cards for each visitor.
type LikeUsecase struct {
	sessions   *SessionRegistry
	promptRepo contract.IPromptRepository
	lookup     *contentLookup
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.ILikeUseCase = (*LikeUsecase)(nil)

// NewLikeUsecase creates and returns a new LikeUsecase instance.
func NewLikeUsecase(sessions *SessionRegistry, promptRepo contract.IPromptRepository, cache contract.IContentCache, logger usecasecontract.IAppLogger) *LikeUsecase {
	return &LikeUsecase{
		sessions:   sessions,
		promptRepo: promptRepo,
		lookup:     &contentLookup{promptRepo: promptRepo, cache: cache, logger: logger},
		logger:     logger,
	}
}

// GetLikeState returns the visitor's like state for a prompt, seeding the
// card counter from the prompt's current like count.
func (u *LikeUsecase) GetLikeState(ctx context.Context, visitorID, promptID string) (usecasecontract.LikeState, error) {
	if visitorID == "" || promptID == "" {
		return usecasecontract.LikeState{PromptID: promptID}, nil
	}
	prompt, err := u.lookup.prompt(ctx, promptID)
	if err != nil {
		return usecasecontract.LikeState{}, fmt.Errorf("failed to load prompt %s: %w", promptID, err)
	}

	session := u.sessions.Session(visitorID)
	session.mu.Lock()
	defer session.mu.Unlock()

	card := session.likeCard(promptID)
	card.Sync(ctx, promptID, prompt.Likes)
	return card.State(), nil
}

// ToggleLike flips the visitor's like on a prompt.
func (u *LikeUsecase) ToggleLike(ctx context.Context, visitorID, promptID string) (usecasecontract.LikeState, error) {
	if visitorID == "" || promptID == "" {
		return usecasecontract.LikeState{PromptID: promptID}, nil
	}
	prompt, err := u.lookup.prompt(ctx, promptID)
	if err != nil {
		return usecasecontract.LikeState{}, fmt.Errorf("failed to load prompt %s: %w", promptID, err)
	}

	session := u.sessions.Session(visitorID)
	session.mu.Lock()
	defer session.mu.Unlock()

	card := session.likeCard(promptID)
	card.Sync(ctx, promptID, prompt.Likes)
	state := card.ToggleLike(ctx)
	metrics.IncLikeToggle(state.IsLiked)
	u.logger.Debugf("visitor=%s prompt=%s liked=%t count=%d", visitorID, promptID, state.IsLiked, state.LikeCount)
	return state, nil
}

// GetLikedPrompts returns the prompts in the visitor's liked set, in the
// order they were liked. Ids that no longer resolve are skipped.
func (u *LikeUsecase) GetLikedPrompts(ctx context.Context, visitorID string) ([]*entity.Prompt, error) {
	if visitorID == "" {
		return []*entity.Prompt{}, nil
	}
	session := u.sessions.Session(visitorID)
	session.mu.Lock()
	ids := session.likes.LikedIDs(ctx)
	session.mu.Unlock()

	if len(ids) == 0 {
		return []*entity.Prompt{}, nil
	}
	prompts, err := u.promptRepo.GetPromptsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load liked prompts: %w", err)
	}
	byID := make(map[string]*entity.Prompt, len(prompts))
	for _, p := range prompts {
		byID[p.ID] = p
	}
	ordered := make([]*entity.Prompt, 0, len(prompts))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}
	return ordered, nil
}
