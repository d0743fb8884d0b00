package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// PromptHandlerInterface allows interface-based injection of the prompt handler.
type PromptHandlerInterface interface {
	ListPrompts(*gin.Context)
	GetPrompt(*gin.Context)
	GetRelatedPrompts(*gin.Context)
	CreatePrompt(*gin.Context)
	CheckSlug(*gin.Context)
}

var _ PromptHandlerInterface = (*PromptHandler)(nil)

type PromptHandler struct {
	promptUsecase usecasecontract.IPromptUseCase
}

func NewPromptHandler(promptUsecase usecasecontract.IPromptUseCase) *PromptHandler {
	return &PromptHandler{promptUsecase: promptUsecase}
}

// ListPrompts handles GET /prompts with search, filters, sort and pagination.
func (h *PromptHandler) ListPrompts(c *gin.Context) {
	var q dto.ListPromptsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}
	opts := contract.PromptFilterOptions{
		Search:   q.Search,
		Level:    entity.PromptLevel(q.Level),
		SortBy:   contract.PromptSort(q.SortBy),
		Page:     q.Page,
		PageSize: q.PageSize,
	}
	for _, cat := range q.Categories {
		opts.Categories = append(opts.Categories, entity.PromptCategory(cat))
	}
	for _, lang := range q.Languages {
		opts.Languages = append(opts.Languages, entity.PromptLanguage(lang))
	}

	prompts, total, err := h.promptUsecase.ListPrompts(c.Request.Context(), opts)
	if err != nil {
		RespondWithError(c, err, "Failed to list prompts")
		return
	}
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = usecase.DefaultPromptPageSize
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedPromptResponse{
		Prompts:    dto.ToPromptResponses(prompts),
		Pagination: dto.NewPagination(total, page, size),
	})
}

func (h *PromptHandler) GetPrompt(c *gin.Context) {
	prompt, err := h.promptUsecase.GetPrompt(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithError(c, err, "Failed to load prompt")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPromptResponse(prompt))
}

func (h *PromptHandler) GetRelatedPrompts(c *gin.Context) {
	prompts, err := h.promptUsecase.GetRelatedPrompts(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondWithError(c, err, "Failed to load related prompts")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"prompts": dto.ToPromptResponses(prompts)})
}

func (h *PromptHandler) CreatePrompt(c *gin.Context) {
	var req dto.CreatePromptRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	prompt, err := h.promptUsecase.CreatePrompt(c.Request.Context(), usecasecontract.CreatePromptInput{
		Title:         req.Title,
		Slug:          req.Slug,
		PromptText:    req.PromptText,
		Category:      entity.PromptCategory(req.Category),
		Level:         entity.PromptLevel(req.Level),
		Language:      entity.PromptLanguage(req.Language),
		Tags:          req.Tags,
		Examples:      req.Examples,
		Tips:          req.Tips,
		IsAIGenerated: req.IsAIGenerated,
		Visibility:    entity.PromptVisibility(req.Visibility),
	})
	if err != nil {
		RespondWithError(c, err, "Failed to create prompt")
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPromptResponse(prompt))
}

// CheckSlug handles GET /prompts/slug-check?slug=.
func (h *PromptHandler) CheckSlug(c *gin.Context) {
	slug := c.Query("slug")
	if slug == "" {
		ErrorHandler(c, http.StatusBadRequest, "slug query parameter is required")
		return
	}
	unique, suggestion, err := h.promptUsecase.CheckSlug(c.Request.Context(), slug)
	if err != nil {
		RespondWithError(c, err, "Failed to check slug")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.SlugCheckResponse{Slug: slug, IsUnique: unique, Suggestion: suggestion})
}
