package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// InteractionHandler serves the visitor's likes on prompts and reactions on posts.
type InteractionHandler struct {
	likeUsecase     usecasecontract.ILikeUseCase
	reactionUsecase usecasecontract.IReactionUseCase
}

func NewInteractionHandler(likeUsecase usecasecontract.ILikeUseCase, reactionUsecase usecasecontract.IReactionUseCase) *InteractionHandler {
	return &InteractionHandler{
		likeUsecase:     likeUsecase,
		reactionUsecase: reactionUsecase,
	}
}

func (h *InteractionHandler) GetLikeState(c *gin.Context) {
	state, err := h.likeUsecase.GetLikeState(c.Request.Context(), visitorID(c), c.Param("id"))
	if err != nil {
		RespondWithError(c, err, "Failed to load like state")
		return
	}
	SuccessHandler(c, http.StatusOK, state)
}

func (h *InteractionHandler) ToggleLike(c *gin.Context) {
	state, err := h.likeUsecase.ToggleLike(c.Request.Context(), visitorID(c), c.Param("id"))
	if err != nil {
		RespondWithError(c, err, "Failed to toggle like")
		return
	}
	SuccessHandler(c, http.StatusOK, state)
}

// GetLikedPrompts lists the prompts the visitor has liked.
func (h *InteractionHandler) GetLikedPrompts(c *gin.Context) {
	prompts, err := h.likeUsecase.GetLikedPrompts(c.Request.Context(), visitorID(c))
	if err != nil {
		RespondWithError(c, err, "Failed to load liked prompts")
		return
	}
	SuccessHandler(c, http.StatusOK, gin.H{"prompts": dto.ToPromptResponses(prompts)})
}

func (h *InteractionHandler) GetReactions(c *gin.Context) {
	state, err := h.reactionUsecase.GetReactionState(c.Request.Context(), visitorID(c), c.Param("id"))
	if err != nil {
		RespondWithError(c, err, "Failed to load reactions")
		return
	}
	SuccessHandler(c, http.StatusOK, state)
}

// React adds, switches or removes the visitor's reaction on a post.
func (h *InteractionHandler) React(c *gin.Context) {
	var req dto.ReactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	state, err := h.reactionUsecase.React(c.Request.Context(), visitorID(c), c.Param("id"), entity.ReactionType(req.Reaction))
	if err != nil {
		RespondWithError(c, err, "Failed to react to post")
		return
	}
	SuccessHandler(c, http.StatusOK, state)
}
