package usecasecontract

import (
	"context"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// DashboardStats summarizes content for the admin dashboard.
type DashboardStats struct {
	Prompts    int64 `json:"prompts"`
	Posts      int64 `json:"posts"`
	TotalLikes int64 `json:"total_likes"`
	TotalViews int64 `json:"total_views"`
}

type IAdminUseCase interface {
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error)
	ListPrompts(ctx context.Context) ([]*entity.Prompt, error)
	SetPromptVerification(ctx context.Context, id string, verified bool) (*entity.Prompt, error)
	DeletePrompt(ctx context.Context, id string) error
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	DeletePost(ctx context.Context, id string) error
	Stats(ctx context.Context) (DashboardStats, error)
}
