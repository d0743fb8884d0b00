package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, contract.ErrPromptNotFound), errors.Is(err, contract.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrInvalidReaction),
		errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidLevel),
		errors.Is(err, usecase.ErrInvalidLanguage),
		errors.Is(err, usecase.ErrMissingAPIKey):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithError writes err with its mapped status. Internal errors are
// recorded on the context and replaced by fallback in the body.
func RespondWithError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorHandler(c, status, fallback)
		return
	}
	ErrorHandler(c, status, err.Error())
}

func visitorID(c *gin.Context) string {
	return middleware.VisitorID(c)
}
