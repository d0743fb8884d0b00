package dto

import (
	"time"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
)

// CreatePromptRequest defines the structure for submitting a prompt
type CreatePromptRequest struct {
	Title         string   `json:"title" binding:"required,max=200"`
	Slug          string   `json:"slug" binding:"omitempty,slug"`
	PromptText    string   `json:"prompt_text" binding:"required"`
	Category      string   `json:"category" binding:"required,oneof=TEXT IMAGE VIDEO CODE WRITING BUSINESS ART DESIGN"`
	Level         string   `json:"level" binding:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	Language      string   `json:"language" binding:"required,oneof=ARABIC ENGLISH MULTILINGUAL"`
	Tags          []string `json:"tags" binding:"max=10,dive,required"`
	Examples      []string `json:"examples"`
	Tips          []string `json:"tips"`
	IsAIGenerated bool     `json:"is_ai_generated"`
	Visibility    string   `json:"visibility" binding:"omitempty,oneof=public private"`
}

// ListPromptsQuery binds the prompt listing filters.
type ListPromptsQuery struct {
	Search     string   `form:"search"`
	Categories []string `form:"category"`
	Level      string   `form:"level" binding:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
	Languages  []string `form:"language"`
	SortBy     string   `form:"sort" binding:"omitempty,oneof=newest oldest alphabetical"`
	Page       int      `form:"page" binding:"omitempty,min=1,max=100000"`
	PageSize   int      `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// PromptResponse is a prompt with its Arabic display labels.
type PromptResponse struct {
	ID            string        `json:"id"`
	Slug          string        `json:"slug,omitempty"`
	Title         string        `json:"title"`
	PromptText    string        `json:"prompt_text"`
	Category      string        `json:"category"`
	CategoryLabel string        `json:"category_label"`
	Level         string        `json:"level"`
	LevelLabel    string        `json:"level_label"`
	Language      string        `json:"language"`
	LanguageLabel string        `json:"language_label"`
	Author        entity.Author `json:"author"`
	Tags          []string      `json:"tags"`
	CreatedAt     time.Time     `json:"created_at"`
	Likes         int           `json:"likes"`
	Views         int           `json:"views"`
	Verified      bool          `json:"verified"`
	Examples      []string      `json:"examples,omitempty"`
	Tips          []string      `json:"tips,omitempty"`
	IsAIGenerated bool          `json:"is_ai_generated"`
	Visibility    string        `json:"visibility,omitempty"`
}

type PaginatedPromptResponse struct {
	Prompts    []PromptResponse `json:"prompts"`
	Pagination Pagination       `json:"pagination"`
}

type SlugCheckResponse struct {
	Slug       string `json:"slug"`
	IsUnique   bool   `json:"is_unique"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ToPromptResponse converts an entity.Prompt to a PromptResponse.
func ToPromptResponse(p *entity.Prompt) PromptResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PromptResponse{
		ID:            p.ID,
		Slug:          p.Slug,
		Title:         p.Title,
		PromptText:    p.PromptText,
		Category:      string(p.Category),
		CategoryLabel: entity.PromptCategoryLabels[p.Category],
		Level:         string(p.Level),
		LevelLabel:    entity.PromptLevelLabels[p.Level],
		Language:      string(p.Language),
		LanguageLabel: entity.PromptLanguageLabels[p.Language],
		Author:        p.Author,
		Tags:          tags,
		CreatedAt:     p.CreatedAt,
		Likes:         p.Likes,
		Views:         p.Views,
		Verified:      p.Verified,
		Examples:      p.Examples,
		Tips:          p.Tips,
		IsAIGenerated: p.IsAIGenerated,
		Visibility:    string(p.Visibility),
	}
}

func ToPromptResponses(prompts []*entity.Prompt) []PromptResponse {
	out := make([]PromptResponse, 0, len(prompts))
	for _, p := range prompts {
		out = append(out, ToPromptResponse(p))
	}
	return out
}
