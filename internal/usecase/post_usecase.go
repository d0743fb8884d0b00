package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
)

const DefaultPostPageSize = 10

// PostUseCaseImpl implements the blog.
type PostUseCaseImpl struct {
	postRepo  contract.IPostRepository
	uuidgen   contract.IUUIDGenerator
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	author    entity.Author
}

var _ usecasecontract.IPostUseCase = (*PostUseCaseImpl)(nil)

func NewPostUseCase(postRepo contract.IPostRepository, uuidgen contract.IUUIDGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger, author entity.Author) *PostUseCaseImpl {
	return &PostUseCaseImpl{
		postRepo:  postRepo,
		uuidgen:   uuidgen,
		validator: validator,
		logger:    logger,
		author:    author,
	}
}

// ListPosts returns posts newest first.
func (uc *PostUseCaseImpl) ListPosts(ctx context.Context, page, pageSize int) ([]*entity.Post, int64, error) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		return nil, 0, fmt.Errorf("%w: page must not exceed %d", ErrInvalidInput, MaxPage)
	}
	if pageSize < 1 {
		pageSize = DefaultPostPageSize
	}
	posts, total, err := uc.postRepo.GetPosts(ctx, page, pageSize)
	if err != nil {
		uc.logger.Errorf("failed to get posts: %v", err)
		return nil, 0, fmt.Errorf("failed to get posts: %w", err)
	}
	return posts, total, nil
}

// GetPostBySlug returns the post, counts the view and derives the meta
// description excerpt from its HTML.
func (uc *PostUseCaseImpl) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, string, error) {
	if slug == "" {
		return nil, "", contract.ErrPostNotFound
	}
	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}
	// A failed view count never blocks reading the post.
	if err := uc.postRepo.IncrementViewCount(ctx, slug); err != nil {
		uc.logger.Warningf("failed to increment views for post slug=%s: %v", slug, err)
	} else {
		post.Views++
	}
	return post, utils.Excerpt(post.ContentHTML, utils.DefaultExcerptLength), nil
}

// CreatePost publishes a post from plain text, one paragraph per line.
func (uc *PostUseCaseImpl) CreatePost(ctx context.Context, input usecasecontract.CreatePostInput) (*entity.Post, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, fmt.Errorf("%w: content is required", ErrInvalidInput)
	}

	id := "post-" + uc.uuidgen.NewUUID()
	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Title)
	}
	if slug == "" {
		slug = id
	} else if err := uc.validator.ValidateSlug(slug); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if existing, err := uc.postRepo.GetPostBySlug(ctx, slug); err == nil && existing != nil {
		return nil, ErrSlugTaken
	} else if err != nil && !errors.Is(err, contract.ErrPostNotFound) {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}

	post := &entity.Post{
		ID:            id,
		Title:         strings.TrimSpace(input.Title),
		Slug:          slug,
		ContentHTML:   utils.ParagraphsToHTML(input.Content),
		Author:        uc.author,
		PublishedAt:   time.Now().UTC(),
		FeaturedImage: input.FeaturedImage,
		Tags:          nonNilStrings(input.Tags),
	}
	if err := uc.postRepo.CreatePost(ctx, post); err != nil {
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	uc.logger.Infof("post created id=%s slug=%s", post.ID, post.Slug)
	return post, nil
}
