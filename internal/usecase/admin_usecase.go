package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("admin role required")
)

// AdminUsecase backs the admin panel: login and content moderation.
type AdminUsecase struct {
	admin      entity.Admin
	promptRepo contract.IPromptRepository
	postRepo   contract.IPostRepository
	lookup     *contentLookup
	hasher     contract.IHasher
	jwtService JWTService
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

func NewAdminUsecase(admin entity.Admin, promptRepo contract.IPromptRepository, postRepo contract.IPostRepository, cache contract.IContentCache, hasher contract.IHasher, jwtService JWTService, logger usecasecontract.IAppLogger) *AdminUsecase {
	return &AdminUsecase{
		admin:      admin,
		promptRepo: promptRepo,
		postRepo:   postRepo,
		lookup:     &contentLookup{promptRepo: promptRepo, postRepo: postRepo, cache: cache, logger: logger},
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login checks the configured admin credentials and issues an access token.
func (u *AdminUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if u.admin.PasswordHash == "" {
		u.logger.Warningf("admin login attempted but no admin password is configured")
		return "", ErrInvalidCredentials
	}
	if !strings.EqualFold(strings.TrimSpace(email), u.admin.Email) {
		return "", ErrInvalidCredentials
	}
	if err := u.hasher.ComparePasswordHash(password, u.admin.PasswordHash); err != nil {
		u.logger.Infof("admin login failed for %s", email)
		return "", ErrInvalidCredentials
	}
	token, err := u.jwtService.GenerateAccessToken(u.admin.ID, entity.UserRoleAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	return token, nil
}

// Authenticate validates an access token and requires the admin role.
func (u *AdminUsecase) Authenticate(ctx context.Context, accessToken string) (*entity.Claims, error) {
	claims, err := u.jwtService.ParseAccessToken(accessToken)
	if err != nil {
		return nil, err
	}
	if claims.Role != entity.UserRoleAdmin {
		return nil, ErrForbidden
	}
	return claims, nil
}

// ListPrompts returns every prompt, newest first.
func (u *AdminUsecase) ListPrompts(ctx context.Context) ([]*entity.Prompt, error) {
	prompts, _, err := u.promptRepo.GetPrompts(ctx, &contract.PromptFilterOptions{SortBy: contract.PromptSortNewest})
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return prompts, nil
}

func (u *AdminUsecase) SetPromptVerification(ctx context.Context, id string, verified bool) (*entity.Prompt, error) {
	prompt, err := u.promptRepo.SetVerified(ctx, id, verified)
	if err != nil {
		return nil, err
	}
	u.lookup.invalidatePrompt(ctx, id)
	u.logger.Infof("prompt id=%s verified=%t", id, verified)
	return prompt, nil
}

func (u *AdminUsecase) DeletePrompt(ctx context.Context, id string) error {
	if err := u.promptRepo.DeletePrompt(ctx, id); err != nil {
		if errors.Is(err, contract.ErrPromptNotFound) {
			u.logger.Warningf("prompt to delete was not found id=%s", id)
		}
		return err
	}
	u.lookup.invalidatePrompt(ctx, id)
	return nil
}

// ListPosts returns every post, newest first.
func (u *AdminUsecase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, _, err := u.postRepo.GetPosts(ctx, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (u *AdminUsecase) DeletePost(ctx context.Context, id string) error {
	if err := u.postRepo.DeletePost(ctx, id); err != nil {
		if errors.Is(err, contract.ErrPostNotFound) {
			u.logger.Warningf("post to delete was not found id=%s", id)
		}
		return err
	}
	u.lookup.invalidatePost(ctx, id)
	return nil
}

// Stats gathers the dashboard aggregates concurrently.
func (u *AdminUsecase) Stats(ctx context.Context) (usecasecontract.DashboardStats, error) {
	var stats usecasecontract.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := u.promptRepo.CountPrompts(gctx)
		stats.Prompts = n
		return err
	})
	g.Go(func() error {
		n, err := u.postRepo.CountPosts(gctx)
		stats.Posts = n
		return err
	})
	g.Go(func() error {
		n, err := u.promptRepo.SumLikes(gctx)
		stats.TotalLikes = n
		return err
	})
	g.Go(func() error {
		n, err := u.postRepo.SumViews(gctx)
		stats.TotalViews = n
		return err
	})
	if err := g.Wait(); err != nil {
		return usecasecontract.DashboardStats{}, fmt.Errorf("failed to gather stats: %w", err)
	}
	return stats, nil
}
