package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/mikiasgoitom/Prompaty/internal/utils"
)

const (
	relatedPromptsLimit   = 4
	DefaultPromptPageSize = 12
	// MaxPage bounds listing page numbers.
	MaxPage               = 100000
	slugSuggestionRange   = 1000
	slugSuggestionTries   = 5
)

var (
	// ErrInvalidInput wraps every rejection of user-supplied fields.
	ErrInvalidInput    = errors.New("invalid input")
	ErrSlugTaken       = errors.New("slug is already taken")
	ErrInvalidCategory = errors.New("invalid prompt category")
	ErrInvalidLevel    = errors.New("invalid prompt level")
	ErrInvalidLanguage = errors.New("invalid prompt language")
)

// PromptUseCaseImpl implements the prompt catalogue.
type PromptUseCaseImpl struct {
	promptRepo contract.IPromptRepository
	lookup     *contentLookup
	uuidgen    contract.IUUIDGenerator
	random     contract.IRandomGenerator
	validator  usecasecontract.IValidator
	logger     usecasecontract.IAppLogger
	author     entity.Author
}

var _ usecasecontract.IPromptUseCase = (*PromptUseCaseImpl)(nil)

// NewPromptUseCase creates a prompt usecase. Submissions are attributed to author.
func NewPromptUseCase(promptRepo contract.IPromptRepository, cache contract.IContentCache, uuidgen contract.IUUIDGenerator, random contract.IRandomGenerator, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger, author entity.Author) *PromptUseCaseImpl {
	return &PromptUseCaseImpl{
		promptRepo: promptRepo,
		lookup:     &contentLookup{promptRepo: promptRepo, cache: cache, logger: logger},
		uuidgen:    uuidgen,
		random:     random,
		validator:  validator,
		logger:     logger,
		author:     author,
	}
}

// ListPrompts returns one page of prompts matching opts and the total match count.
func (uc *PromptUseCaseImpl) ListPrompts(ctx context.Context, opts contract.PromptFilterOptions) ([]*entity.Prompt, int64, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Page > MaxPage {
		return nil, 0, fmt.Errorf("%w: page must not exceed %d", ErrInvalidInput, MaxPage)
	}
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPromptPageSize
	}
	switch opts.SortBy {
	case contract.PromptSortNewest, contract.PromptSortOldest, contract.PromptSortAlphabetical:
	default:
		opts.SortBy = contract.PromptSortNewest
	}
	opts.Search = strings.TrimSpace(opts.Search)

	prompts, total, err := uc.promptRepo.GetPrompts(ctx, &opts)
	if err != nil {
		uc.logger.Errorf("failed to get prompts: %v", err)
		return nil, 0, fmt.Errorf("failed to get prompts: %w", err)
	}
	return prompts, total, nil
}

// GetPrompt returns a single prompt.
func (uc *PromptUseCaseImpl) GetPrompt(ctx context.Context, id string) (*entity.Prompt, error) {
	if id == "" {
		return nil, contract.ErrPromptNotFound
	}
	return uc.lookup.prompt(ctx, id)
}

// GetRelatedPrompts ranks prompts of the same category by the number of
// shared tags, breaking ties by likes, and returns the top four.
func (uc *PromptUseCaseImpl) GetRelatedPrompts(ctx context.Context, id string) ([]*entity.Prompt, error) {
	current, err := uc.GetPrompt(ctx, id)
	if err != nil {
		return nil, err
	}
	candidates, err := uc.promptRepo.GetPromptsByCategory(ctx, current.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to get related prompts: %w", err)
	}
	return rankRelated(current, candidates, relatedPromptsLimit), nil
}

func rankRelated(current *entity.Prompt, candidates []*entity.Prompt, limit int) []*entity.Prompt {
	type scored struct {
		prompt *entity.Prompt
		score  int
	}
	ranked := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == current.ID || p.Category != current.Category {
			continue
		}
		score := 0
		for _, tag := range p.Tags {
			if current.HasTag(tag) {
				score++
			}
		}
		ranked = append(ranked, scored{prompt: p, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].prompt.Likes > ranked[j].prompt.Likes
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	out := make([]*entity.Prompt, len(ranked))
	for i, r := range ranked {
		out[i] = r.prompt
	}
	return out
}

// CreatePrompt stores a new, unverified prompt with zeroed counters.
func (uc *PromptUseCaseImpl) CreatePrompt(ctx context.Context, input usecasecontract.CreatePromptInput) (*entity.Prompt, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if strings.TrimSpace(input.PromptText) == "" {
		return nil, fmt.Errorf("%w: prompt text is required", ErrInvalidInput)
	}
	if _, ok := entity.PromptCategoryLabels[input.Category]; !ok {
		return nil, ErrInvalidCategory
	}
	if _, ok := entity.PromptLevelLabels[input.Level]; !ok {
		return nil, ErrInvalidLevel
	}
	if _, ok := entity.PromptLanguageLabels[input.Language]; !ok {
		return nil, ErrInvalidLanguage
	}

	slug := input.Slug
	if slug == "" {
		slug = utils.GenerateSlug(input.Title)
	}
	if slug != "" {
		if err := uc.validator.ValidateSlug(slug); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		exists, err := uc.promptRepo.SlugExists(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("failed to check slug: %w", err)
		}
		if exists {
			return nil, ErrSlugTaken
		}
	}

	visibility := input.Visibility
	if visibility == "" {
		visibility = entity.PromptVisibilityPublic
	}
	prompt := &entity.Prompt{
		ID:            "prompt-" + uc.uuidgen.NewUUID(),
		Slug:          slug,
		Title:         strings.TrimSpace(input.Title),
		PromptText:    input.PromptText,
		Category:      input.Category,
		Level:         input.Level,
		Language:      input.Language,
		Author:        uc.author,
		Tags:          nonNilStrings(input.Tags),
		CreatedAt:     time.Now().UTC(),
		Examples:      input.Examples,
		Tips:          input.Tips,
		IsAIGenerated: input.IsAIGenerated,
		Visibility:    visibility,
	}
	if err := uc.promptRepo.CreatePrompt(ctx, prompt); err != nil {
		uc.logger.Errorf("failed to create prompt: %v", err)
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}
	uc.logger.Infof("prompt created id=%s slug=%s", prompt.ID, prompt.Slug)
	return prompt, nil
}

// CheckSlug reports whether slug is free. When it is taken a suggestion of
// the form "<slug>-<n>" is returned.
func (uc *PromptUseCaseImpl) CheckSlug(ctx context.Context, slug string) (bool, string, error) {
	if err := uc.validator.ValidateSlug(slug); err != nil {
		return false, "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	exists, err := uc.promptRepo.SlugExists(ctx, slug)
	if err != nil {
		return false, "", fmt.Errorf("failed to check slug: %w", err)
	}
	if !exists {
		return true, "", nil
	}

	var suggestion string
	for i := 0; i < slugSuggestionTries; i++ {
		n, err := uc.random.Intn(slugSuggestionRange)
		if err != nil {
			return false, "", err
		}
		suggestion = fmt.Sprintf("%s-%d", slug, n)
		taken, err := uc.promptRepo.SlugExists(ctx, suggestion)
		if err != nil {
			return false, "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !taken {
			break
		}
	}
	return false, suggestion, nil
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
