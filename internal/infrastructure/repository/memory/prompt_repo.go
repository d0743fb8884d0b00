package memory

import (
	"context"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PromptRepository keeps prompts in process memory. It backs local runs and tests.
type PromptRepository struct {
	mu      sync.RWMutex
	prompts []*entity.Prompt
}

var _ contract.IPromptRepository = (*PromptRepository)(nil)

// NewPromptRepository returns a repository holding copies of seed.
func NewPromptRepository(seed []*entity.Prompt) *PromptRepository {
	r := &PromptRepository{}
	for _, p := range seed {
		r.prompts = append(r.prompts, clonePrompt(p))
	}
	return r
}

func clonePrompt(p *entity.Prompt) *entity.Prompt {
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	cp.Examples = slices.Clone(p.Examples)
	cp.Tips = slices.Clone(p.Tips)
	return &cp
}

func (r *PromptRepository) CreatePrompt(_ context.Context, prompt *entity.Prompt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// newest first, like the seeded listing
	r.prompts = append([]*entity.Prompt{clonePrompt(prompt)}, r.prompts...)
	return nil
}

func (r *PromptRepository) GetPromptByID(_ context.Context, id string) (*entity.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.prompts {
		if p.ID == id {
			return clonePrompt(p), nil
		}
	}
	return nil, contract.ErrPromptNotFound
}

func (r *PromptRepository) GetPromptsByIDs(_ context.Context, ids []string) ([]*entity.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.Prompt{}
	for _, p := range r.prompts {
		if slices.Contains(ids, p.ID) {
			out = append(out, clonePrompt(p))
		}
	}
	return out, nil
}

func (r *PromptRepository) GetPrompts(_ context.Context, opts *contract.PromptFilterOptions) ([]*entity.Prompt, int64, error) {
	r.mu.RLock()
	matched := []*entity.Prompt{}
	for _, p := range r.prompts {
		if matchesPrompt(p, opts) {
			matched = append(matched, clonePrompt(p))
		}
	}
	r.mu.RUnlock()

	switch opts.SortBy {
	case contract.PromptSortOldest:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.Before(matched[j].CreatedAt) })
	case contract.PromptSortAlphabetical:
		c := collate.New(language.Arabic)
		sort.SliceStable(matched, func(i, j int) bool { return c.CompareString(matched[i].Title, matched[j].Title) < 0 })
	default:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	}

	total := int64(len(matched))
	return paginate(matched, opts.Page, opts.PageSize), total, nil
}

func matchesPrompt(p *entity.Prompt, opts *contract.PromptFilterOptions) bool {
	if opts.Search != "" {
		q := strings.ToLower(opts.Search)
		if !strings.Contains(strings.ToLower(p.Title), q) && !strings.Contains(strings.ToLower(p.PromptText), q) {
			return false
		}
	}
	if len(opts.Categories) > 0 && !slices.Contains(opts.Categories, p.Category) {
		return false
	}
	if opts.Level != "" && p.Level != opts.Level {
		return false
	}
	if len(opts.Languages) > 0 && !slices.Contains(opts.Languages, p.Language) {
		return false
	}
	return true
}

func (r *PromptRepository) GetPromptsByCategory(_ context.Context, category entity.PromptCategory) ([]*entity.Prompt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*entity.Prompt{}
	for _, p := range r.prompts {
		if p.Category == category {
			out = append(out, clonePrompt(p))
		}
	}
	return out, nil
}

func (r *PromptRepository) SlugExists(_ context.Context, slug string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.prompts {
		if p.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (r *PromptRepository) SetVerified(_ context.Context, id string, verified bool) (*entity.Prompt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prompts {
		if p.ID == id {
			p.Verified = verified
			return clonePrompt(p), nil
		}
	}
	return nil, contract.ErrPromptNotFound
}

func (r *PromptRepository) DeletePrompt(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.prompts {
		if p.ID == id {
			r.prompts = slices.Delete(r.prompts, i, i+1)
			return nil
		}
	}
	return contract.ErrPromptNotFound
}

func (r *PromptRepository) CountPrompts(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.prompts)), nil
}

func (r *PromptRepository) SumLikes(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, p := range r.prompts {
		total += int64(p.Likes)
	}
	return total, nil
}

// paginate slices items to the requested page. A pageSize of zero returns items unchanged.
func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	offset, ok := utils.PageOffset(page, pageSize)
	if !ok || offset >= int64(len(items)) {
		return []T{}
	}
	start := int(offset)
	end := min(start+pageSize, len(items))
	return items[start:end]
}
