package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// PostRepository keeps posts in process memory.
type PostRepository struct {
	mu    sync.RWMutex
	posts []*entity.Post
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository(seed []*entity.Post) *PostRepository {
	r := &PostRepository{}
	for _, p := range seed {
		r.posts = append(r.posts, clonePost(p))
	}
	return r
}

func clonePost(p *entity.Post) *entity.Post {
	cp := *p
	cp.Tags = slices.Clone(p.Tags)
	return &cp
}

func (r *PostRepository) CreatePost(_ context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]*entity.Post{clonePost(post)}, r.posts...)
	return nil
}

func (r *PostRepository) GetPostByID(_ context.Context, id string) (*entity.Post, error) {
	return r.find(func(p *entity.Post) bool { return p.ID == id })
}

func (r *PostRepository) GetPostBySlug(_ context.Context, slug string) (*entity.Post, error) {
	return r.find(func(p *entity.Post) bool { return p.Slug == slug })
}

func (r *PostRepository) find(match func(*entity.Post) bool) (*entity.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if match(p) {
			return clonePost(p), nil
		}
	}
	return nil, contract.ErrPostNotFound
}

func (r *PostRepository) GetPosts(_ context.Context, page, pageSize int) ([]*entity.Post, int64, error) {
	r.mu.RLock()
	all := make([]*entity.Post, 0, len(r.posts))
	for _, p := range r.posts {
		all = append(all, clonePost(p))
	}
	r.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool { return all[i].PublishedAt.After(all[j].PublishedAt) })
	return paginate(all, page, pageSize), int64(len(all)), nil
}

func (r *PostRepository) IncrementViewCount(_ context.Context, slug string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug == slug {
			p.Views++
			return nil
		}
	}
	return contract.ErrPostNotFound
}

func (r *PostRepository) DeletePost(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = slices.Delete(r.posts, i, i+1)
			return nil
		}
	}
	return contract.ErrPostNotFound
}

func (r *PostRepository) CountPosts(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.posts)), nil
}

func (r *PostRepository) SumViews(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var total int64
	for _, p := range r.posts {
		total += int64(p.Views)
	}
	return total, nil
}
