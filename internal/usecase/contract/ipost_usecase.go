package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// CreatePostInput carries a blog submission with plain-text content.
type CreatePostInput struct {
	Title         string
	Slug          string
	Content       string
	FeaturedImage string
	Tags          []string
}

type IPostUseCase interface {
	ListPosts(ctx context.Context, page, pageSize int) ([]*entity.Post, int64, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, string, error)
	CreatePost(ctx context.Context, input CreatePostInput) (*entity.Post, error)
}
