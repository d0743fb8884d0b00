package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// MockPromptUsecase is a mock implementation of IPromptUseCase
type MockPromptUsecase struct {
	ShouldFailList   bool
	ShouldFailCreate bool
	SlugTaken        bool

	MockPrompt  entity.Prompt
	LastOptions contract.PromptFilterOptions
	LastInput   usecasecontract.CreatePromptInput
}

var _ usecasecontract.IPromptUseCase = (*MockPromptUsecase)(nil)

func NewMockPromptUsecase() *MockPromptUsecase {
	return &MockPromptUsecase{
		MockPrompt: entity.Prompt{
			ID:         "p1",
			Slug:       "marketing-email-writer",
			Title:      "كاتب رسائل تسويقية",
			PromptText: "اكتب رسالة",
			Category:   entity.PromptCategoryWriting,
			Level:      entity.PromptLevelBeginner,
			Language:   entity.PromptLanguageArabic,
			Tags:       []string{"تسويق"},
			CreatedAt:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Likes:      10,
		},
	}
}

func (m *MockPromptUsecase) ListPrompts(ctx context.Context, opts contract.PromptFilterOptions) ([]*entity.Prompt, int64, error) {
	m.LastOptions = opts
	if m.ShouldFailList {
		return nil, 0, errors.New("list failed")
	}
	p := m.MockPrompt
	return []*entity.Prompt{&p}, 1, nil
}

func (m *MockPromptUsecase) GetPrompt(ctx context.Context, id string) (*entity.Prompt, error) {
	if id != m.MockPrompt.ID {
		return nil, contract.ErrPromptNotFound
	}
	p := m.MockPrompt
	return &p, nil
}

func (m *MockPromptUsecase) GetRelatedPrompts(ctx context.Context, id string) ([]*entity.Prompt, error) {
	if id != m.MockPrompt.ID {
		return nil, contract.ErrPromptNotFound
	}
	return []*entity.Prompt{}, nil
}

func (m *MockPromptUsecase) CreatePrompt(ctx context.Context, input usecasecontract.CreatePromptInput) (*entity.Prompt, error) {
	m.LastInput = input
	if m.SlugTaken {
		return nil, usecase.ErrSlugTaken
	}
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	p := m.MockPrompt
	p.ID = "prompt-new"
	p.Title = input.Title
	return &p, nil
}

func (m *MockPromptUsecase) CheckSlug(ctx context.Context, slug string) (bool, string, error) {
	if m.SlugTaken {
		return false, slug + "-42", nil
	}
	return true, "", nil
}

// MockPostUsecase is a mock implementation of IPostUseCase
type MockPostUsecase struct {
	ShouldFailList   bool
	ShouldFailCreate bool
	MockPost         entity.Post
}

var _ usecasecontract.IPostUseCase = (*MockPostUsecase)(nil)

func NewMockPostUsecase() *MockPostUsecase {
	return &MockPostUsecase{
		MockPost: entity.Post{
			ID:          "b1",
			Title:       "كيف تكتب أمرًا فعالًا",
			Slug:        "how-to-write-effective-prompts",
			ContentHTML: "<p>مرحبا</p>",
			Views:       3,
			Reactions:   entity.ReactionCounts{Heart: 5, Insightful: 2, Fire: 1},
		},
	}
}

func (m *MockPostUsecase) ListPosts(ctx context.Context, page, pageSize int) ([]*entity.Post, int64, error) {
	if m.ShouldFailList {
		return nil, 0, errors.New("list failed")
	}
	p := m.MockPost
	return []*entity.Post{&p}, 1, nil
}

func (m *MockPostUsecase) GetPostBySlug(ctx context.Context, slug string) (*entity.Post, string, error) {
	if slug != m.MockPost.Slug {
		return nil, "", contract.ErrPostNotFound
	}
	p := m.MockPost
	p.Views++
	return &p, "مرحبا", nil
}

func (m *MockPostUsecase) CreatePost(ctx context.Context, input usecasecontract.CreatePostInput) (*entity.Post, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	p := m.MockPost
	p.ID = "post-new"
	p.Title = input.Title
	return &p, nil
}
