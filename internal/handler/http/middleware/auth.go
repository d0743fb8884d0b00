package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

// AdminAuth requires a valid admin bearer token.
func AdminAuth(adminUsecase usecasecontract.IAdminUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header required"})
			return
		}
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid authorization header format"})
			return
		}
		claims, err := adminUsecase.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("userRole", string(claims.Role))
		c.Next()
	}
}
