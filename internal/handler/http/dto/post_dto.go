package dto

import (
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// CreatePostRequest carries a plain-text blog submission; each non-empty line becomes a paragraph.
type CreatePostRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Slug          string   `json:"slug" binding:"omitempty,slug"`
	Content       string   `json:"content" binding:"required"`
	FeaturedImage string   `json:"featured_image" binding:"omitempty,url"`
	Tags          []string `json:"tags" binding:"max=10,dive,required"`
}

type PaginatedPostResponse struct {
	Posts      []*entity.Post `json:"posts"`
	Pagination Pagination     `json:"pagination"`
}

// PostDetailResponse is a single post together with its meta description.
type PostDetailResponse struct {
	Post    *entity.Post `json:"post"`
	Excerpt string       `json:"excerpt"`
}
