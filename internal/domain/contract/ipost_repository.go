package contract

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// ErrPostNotFound is returned when no post matches the lookup.
var ErrPostNotFound = errors.New("post not found")

// IPostRepository is the blog post data source.
type IPostRepository interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id string) (*entity.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	// GetPosts returns posts ordered by published_at, newest first.
	GetPosts(ctx context.Context, page, pageSize int) ([]*entity.Post, int64, error)
	IncrementViewCount(ctx context.Context, slug string) error
	DeletePost(ctx context.Context, id string) error
	CountPosts(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}
