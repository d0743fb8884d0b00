package usecase

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// LikeStore tracks which prompts a visitor has liked. The set is persisted
// under LikedPromptsKey; the in-memory copy stays authoritative when the
// store cannot be read or written.
type LikeStore struct {
	kv     contract.IKeyValueStore
	logger usecasecontract.IAppLogger
	liked  *entity.LikedSet
}

func NewLikeStore(kv contract.IKeyValueStore, logger usecasecontract.IAppLogger) *LikeStore {
	return &LikeStore{kv: kv, logger: logger}
}

// sync refreshes the in-memory set from storage and returns it.
func (s *LikeStore) sync(ctx context.Context) *entity.LikedSet {
	if s.liked == nil {
		s.liked = entity.NewLikedSet()
	}
	fresh := entity.NewLikedSet()
	if loadPreference(ctx, s.kv, LikedPromptsKey, fresh, s.logger) {
		s.liked = fresh
	}
	return s.liked
}

// IsLiked reports whether promptID is in the persisted set.
func (s *LikeStore) IsLiked(ctx context.Context, promptID string) bool {
	if promptID == "" {
		return false
	}
	return s.sync(ctx).Has(promptID)
}

// LikedIDs returns the liked prompt ids in the order they were liked.
func (s *LikeStore) LikedIDs(ctx context.Context) []string {
	return s.sync(ctx).IDs()
}

// SetLiked adds or removes promptID and persists the set.
func (s *LikeStore) SetLiked(ctx context.Context, promptID string, liked bool) {
	if promptID == "" {
		return
	}
	set := s.sync(ctx)
	if liked {
		set.Add(promptID)
	} else {
		set.Remove(promptID)
	}
	savePreference(ctx, s.kv, LikedPromptsKey, set, s.logger)
}

// PromptLikeTracker is the like view-model of one prompt card. The counter
// is seeded from the data source baseline and then only moves by ±1 per
// toggle; it is never derived from membership after the seed.
type PromptLikeTracker struct {
	store    *LikeStore
	promptID string
	baseline int
	seeded   bool
	isLiked  bool
	count    int
}

func NewPromptLikeTracker(store *LikeStore) *PromptLikeTracker {
	return &PromptLikeTracker{store: store}
}

// Sync seeds the tracker for (promptID, baseline). Calls with the same pair
// as the last seed leave the counter alone.
func (t *PromptLikeTracker) Sync(ctx context.Context, promptID string, baseline int) {
	if t.seeded && t.promptID == promptID && t.baseline == baseline {
		return
	}
	t.promptID = promptID
	t.baseline = baseline
	t.count = baseline
	t.isLiked = t.store.IsLiked(ctx, promptID)
	t.seeded = true
}

// ToggleLike flips the like, moves the counter by one and persists the set.
// It does nothing before the tracker has been synced with a prompt id.
func (t *PromptLikeTracker) ToggleLike(ctx context.Context) usecasecontract.LikeState {
	if t.promptID == "" {
		return t.State()
	}
	t.isLiked = !t.isLiked
	if t.isLiked {
		t.count++
	} else {
		t.count--
	}
	t.store.SetLiked(ctx, t.promptID, t.isLiked)
	return t.State()
}

func (t *PromptLikeTracker) IsLiked() bool  { return t.isLiked }
func (t *PromptLikeTracker) LikeCount() int { return t.count }

func (t *PromptLikeTracker) State() usecasecontract.LikeState {
	return usecasecontract.LikeState{PromptID: t.promptID, IsLiked: t.isLiked, LikeCount: t.count}
}
