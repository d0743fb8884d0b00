package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

type AdminHandler struct {
	adminUsecase usecasecontract.IAdminUseCase
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	token, err := h.adminUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondWithError(c, err, "Login failed")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AdminLoginResponse{AccessToken: token, TokenType: "Bearer"})
}

func (h *AdminHandler) ListPrompts(c *gin.Context) {
	prompts, err := h.adminUsecase.ListPrompts(c.Request.Context())
	if err != nil {
		RespondWithError(c, err, "Failed to list prompts")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"prompts": dto.ToPromptResponses(prompts)})
}

// SetPromptVerification handles PATCH /admin/prompts/:id/verification.
func (h *AdminHandler) SetPromptVerification(c *gin.Context) {
	var req dto.VerificationRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	prompt, err := h.adminUsecase.SetPromptVerification(c.Request.Context(), c.Param("id"), *req.Verified)
	if err != nil {
		RespondWithError(c, err, "Failed to update prompt")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPromptResponse(prompt))
}

func (h *AdminHandler) DeletePrompt(c *gin.Context) {
	if err := h.adminUsecase.DeletePrompt(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithError(c, err, "Failed to delete prompt")
		return
	}
	MessageHandler(c, http.StatusOK, "Prompt deleted successfully")
}

func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.adminUsecase.ListPosts(c.Request.Context())
	if err != nil {
		RespondWithError(c, err, "Failed to list posts")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"posts": posts})
}

func (h *AdminHandler) DeletePost(c *gin.Context) {
	if err := h.adminUsecase.DeletePost(c.Request.Context(), c.Param("id")); err != nil {
		RespondWithError(c, err, "Failed to delete post")
		return
	}
	MessageHandler(c, http.StatusOK, "Post deleted successfully")
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUsecase.Stats(c.Request.Context())
	if err != nil {
		RespondWithError(c, err, "Failed to load dashboard stats")
		return
	}
	SuccessHandler(c, http.StatusOK, stats)
}
