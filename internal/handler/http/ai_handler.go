package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// GeminiKeyHeader lets a visitor bring their own Gemini API key.
const GeminiKeyHeader = "X-Gemini-API-Key"

type AIHandler struct {
	AIUseCase usecasecontract.IAIUseCase
}

func NewAIHandler(aiuc usecasecontract.IAIUseCase) *AIHandler {
	return &AIHandler{
		AIUseCase: aiuc,
	}
}

// HandleGeneratePrompt drafts a structured prompt from a topic and optional context.
func (h *AIHandler) HandleGeneratePrompt(ctx *gin.Context) {
	var req dto.GeneratePromptRequest
	if err := BindAndValidate(ctx, &req); err != nil {
		return
	}
	generated, err := h.AIUseCase.GeneratePrompt(ctx.Request.Context(), ctx.GetHeader(GeminiKeyHeader), req.Topic, req.Context)
	if err != nil {
		RespondWithError(ctx, err, "Failed to generate prompt")
		return
	}
	SuccessHandler(ctx, http.StatusOK, generated)
}

// HandleImprovePrompt rewrites a prompt text for clarity.
func (h *AIHandler) HandleImprovePrompt(ctx *gin.Context) {
	var req dto.ImprovePromptRequest
	if err := BindAndValidate(ctx, &req); err != nil {
		return
	}
	improved, err := h.AIUseCase.ImprovePrompt(ctx.Request.Context(), ctx.GetHeader(GeminiKeyHeader), req.PromptText)
	if err != nil {
		RespondWithError(ctx, err, "Failed to improve prompt")
		return
	}
	SuccessHandler(ctx, http.StatusOK, dto.ImprovePromptResponse{PromptText: improved})
}
