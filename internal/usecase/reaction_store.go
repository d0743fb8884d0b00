package usecase

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// ErrInvalidReaction is returned for tags outside the fixed reaction set.
var ErrInvalidReaction = errors.New("invalid reaction type")

// Reaction branches.
const (
	ReactionBranchAdd    = "add"
	ReactionBranchSwitch = "switch"
	ReactionBranchRemove = "remove"
)

// ReactionStore tracks the single reaction a visitor left on each post,
// persisted under UserPostReactionsKey.
type ReactionStore struct {
	kv        contract.IKeyValueStore
	logger    usecasecontract.IAppLogger
	reactions entity.ReactionMap
}

func NewReactionStore(kv contract.IKeyValueStore, logger usecasecontract.IAppLogger) *ReactionStore {
	return &ReactionStore{kv: kv, logger: logger}
}

func (s *ReactionStore) sync(ctx context.Context) entity.ReactionMap {
	if s.reactions == nil {
		s.reactions = entity.ReactionMap{}
	}
	var fresh entity.ReactionMap
	if loadPreference(ctx, s.kv, UserPostReactionsKey, &fresh, s.logger) {
		// A stored JSON null decodes to a nil map.
		if fresh == nil {
			fresh = entity.ReactionMap{}
		}
		s.reactions = fresh
	}
	return s.reactions
}

// Current returns the visitor's reaction on postID, if any.
func (s *ReactionStore) Current(ctx context.Context, postID string) (entity.ReactionType, bool) {
	if postID == "" {
		return "", false
	}
	r, ok := s.sync(ctx)[postID]
	if !ok || !r.IsValid() {
		return "", false
	}
	return r, true
}

// Set stores reaction for postID, replacing any previous one.
func (s *ReactionStore) Set(ctx context.Context, postID string, reaction entity.ReactionType) {
	m := s.sync(ctx)
	m[postID] = reaction
	savePreference(ctx, s.kv, UserPostReactionsKey, m, s.logger)
}

// Clear removes the visitor's reaction on postID.
func (s *ReactionStore) Clear(ctx context.Context, postID string) {
	m := s.sync(ctx)
	delete(m, postID)
	savePreference(ctx, s.kv, UserPostReactionsKey, m, s.logger)
}

// PostReactionTracker is the reaction view-model of one post card.
type PostReactionTracker struct {
	store        *ReactionStore
	postID       string
	baseline     entity.ReactionCounts
	seeded       bool
	counts       entity.ReactionCounts
	userReaction entity.ReactionType
}

func NewPostReactionTracker(store *ReactionStore) *PostReactionTracker {
	return &PostReactionTracker{store: store}
}

// Sync seeds the counts from baseline and reloads the visitor's reaction
// whenever postID or baseline differs from the last seed.
func (t *PostReactionTracker) Sync(ctx context.Context, postID string, baseline entity.ReactionCounts) {
	if t.seeded && t.postID == postID && t.baseline == baseline {
		return
	}
	t.postID = postID
	t.baseline = baseline
	t.counts = baseline
	t.userReaction, _ = t.store.Current(ctx, postID)
	t.seeded = true
}

// React applies a reaction and returns the branch taken. Picking the current
// reaction again removes it, picking another one switches, otherwise the
// reaction is added.
func (t *PostReactionTracker) React(ctx context.Context, reaction entity.ReactionType) (string, error) {
	if !reaction.IsValid() {
		return "", ErrInvalidReaction
	}
	if t.postID == "" {
		return "", nil
	}

	current, hasCurrent := t.store.Current(ctx, t.postID)
	switch {
	case hasCurrent && current == reaction:
		t.counts.Add(reaction, -1)
		t.store.Clear(ctx, t.postID)
		t.userReaction = ""
		return ReactionBranchRemove, nil
	case hasCurrent:
		t.counts.Add(current, -1)
		t.counts.Add(reaction, 1)
		t.store.Set(ctx, t.postID, reaction)
		t.userReaction = reaction
		return ReactionBranchSwitch, nil
	default:
		t.counts.Add(reaction, 1)
		t.store.Set(ctx, t.postID, reaction)
		t.userReaction = reaction
		return ReactionBranchAdd, nil
	}
}

// CurrentReaction returns the visitor's reaction as of the last sync or react.
func (t *PostReactionTracker) CurrentReaction() (entity.ReactionType, bool) {
	return t.userReaction, t.userReaction != ""
}

func (t *PostReactionTracker) Counts() entity.ReactionCounts { return t.counts }

func (t *PostReactionTracker) State() usecasecontract.ReactionState {
	state := usecasecontract.ReactionState{PostID: t.postID, Reactions: t.counts}
	if r, ok := t.CurrentReaction(); ok {
		state.UserReaction = &r
	}
	return state
}
