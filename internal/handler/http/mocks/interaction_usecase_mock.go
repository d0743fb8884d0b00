package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// MockLikeUsecase keeps a single liked set and a like count per prompt.
type MockLikeUsecase struct {
	ShouldFailGetState bool
	ShouldFailToggle   bool
	ShouldFailGetLiked bool
	PromptNotFound     bool

	Liked         map[string]bool
	Counts        map[string]int
	LikedPrompts  []*entity.Prompt
	LastVisitorID string
}

var _ usecasecontract.ILikeUseCase = (*MockLikeUsecase)(nil)

func NewMockLikeUsecase() *MockLikeUsecase {
	return &MockLikeUsecase{
		Liked:  map[string]bool{},
		Counts: map[string]int{"p1": 10},
	}
}

func (m *MockLikeUsecase) GetLikeState(ctx context.Context, visitorID, promptID string) (usecasecontract.LikeState, error) {
	m.LastVisitorID = visitorID
	if m.PromptNotFound {
		return usecasecontract.LikeState{}, contract.ErrPromptNotFound
	}
	if m.ShouldFailGetState {
		return usecasecontract.LikeState{}, errors.New("like state failed")
	}
	return usecasecontract.LikeState{PromptID: promptID, IsLiked: m.Liked[promptID], LikeCount: m.Counts[promptID]}, nil
}

func (m *MockLikeUsecase) ToggleLike(ctx context.Context, visitorID, promptID string) (usecasecontract.LikeState, error) {
	m.LastVisitorID = visitorID
	if m.PromptNotFound {
		return usecasecontract.LikeState{}, contract.ErrPromptNotFound
	}
	if m.ShouldFailToggle {
		return usecasecontract.LikeState{}, errors.New("toggle failed")
	}
	if m.Liked[promptID] {
		m.Liked[promptID] = false
		m.Counts[promptID]--
	} else {
		m.Liked[promptID] = true
		m.Counts[promptID]++
	}
	return usecasecontract.LikeState{PromptID: promptID, IsLiked: m.Liked[promptID], LikeCount: m.Counts[promptID]}, nil
}

func (m *MockLikeUsecase) GetLikedPrompts(ctx context.Context, visitorID string) ([]*entity.Prompt, error) {
	m.LastVisitorID = visitorID
	if m.ShouldFailGetLiked {
		return nil, errors.New("liked prompts failed")
	}
	return m.LikedPrompts, nil
}

// MockReactionUsecase returns a fixed state and records the last reaction.
type MockReactionUsecase struct {
	ShouldFailGetState bool
	ShouldFailReact    bool
	PostNotFound       bool
	State              usecasecontract.ReactionState
	LastReaction       entity.ReactionType
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		State: usecasecontract.ReactionState{
			PostID:    "b1",
			Reactions: entity.ReactionCounts{Heart: 5, Insightful: 2, Funny: 0, Fire: 1},
		},
	}
}

func (m *MockReactionUsecase) GetReactionState(ctx context.Context, visitorID, postID string) (usecasecontract.ReactionState, error) {
	if m.PostNotFound {
		return usecasecontract.ReactionState{}, contract.ErrPostNotFound
	}
	if m.ShouldFailGetState {
		return usecasecontract.ReactionState{}, errors.New("reaction state failed")
	}
	return m.State, nil
}

func (m *MockReactionUsecase) React(ctx context.Context, visitorID, postID string, reaction entity.ReactionType) (usecasecontract.ReactionState, error) {
	if !reaction.IsValid() {
		return usecasecontract.ReactionState{}, usecase.ErrInvalidReaction
	}
	if m.PostNotFound {
		return usecasecontract.ReactionState{}, contract.ErrPostNotFound
	}
	if m.ShouldFailReact {
		return usecasecontract.ReactionState{}, errors.New("react failed")
	}
	m.LastReaction = reaction
	m.State.Reactions.Add(reaction, 1)
	r := reaction
	m.State.UserReaction = &r
	return m.State, nil
}
