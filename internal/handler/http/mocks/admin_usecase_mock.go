package mocks

import (
	"context"
	"errors"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// MockAdminUsecase accepts a single token and a single credential pair.
type MockAdminUsecase struct {
	ShouldFailStats bool

	ValidToken string
	Email      string
	Password   string
	Prompts    map[string]*entity.Prompt
	MockStats  usecasecontract.DashboardStats
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{
		ValidToken: "mock_access_token",
		Email:      "admin@prompaty.local",
		Password:   "secret",
		Prompts: map[string]*entity.Prompt{
			"p1": {ID: "p1", Title: "كاتب رسائل تسويقية", Category: entity.PromptCategoryWriting},
		},
		MockStats: usecasecontract.DashboardStats{Prompts: 8, Posts: 3, TotalLikes: 150, TotalViews: 2490},
	}
}

func (m *MockAdminUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email != m.Email || password != m.Password {
		return "", usecase.ErrInvalidCredentials
	}
	return m.ValidToken, nil
}

func (m *MockAdminUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	if accessToken != m.ValidToken {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{UserID: "admin", Role: entity.UserRoleAdmin}, nil
}

func (m *MockAdminUsecase) ListPrompts(ctx context.Context) ([]*entity.Prompt, error) {
	out := []*entity.Prompt{}
	for _, p := range m.Prompts {
		out = append(out, p)
	}
	return out, nil
}

func (m *MockAdminUsecase) SetPromptVerification(ctx context.Context, id string, verified bool) (*entity.Prompt, error) {
	p, ok := m.Prompts[id]
	if !ok {
		return nil, contract.ErrPromptNotFound
	}
	p.Verified = verified
	return p, nil
}

func (m *MockAdminUsecase) DeletePrompt(ctx context.Context, id string) error {
	if _, ok := m.Prompts[id]; !ok {
		return contract.ErrPromptNotFound
	}
	delete(m.Prompts, id)
	return nil
}

func (m *MockAdminUsecase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	return []*entity.Post{}, nil
}

func (m *MockAdminUsecase) DeletePost(ctx context.Context, id string) error {
	return contract.ErrPostNotFound
}

func (m *MockAdminUsecase) Stats(ctx context.Context) (usecasecontract.DashboardStats, error) {
	if m.ShouldFailStats {
		return usecasecontract.DashboardStats{}, errors.New("stats failed")
	}
	return m.MockStats, nil
}
