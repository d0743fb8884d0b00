package middleware

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
)

// NewLimiter builds a per-IP limiter allowing max requests per second.
func NewLimiter(max float64) *limiter.Limiter {
	lmt := tollbooth.NewLimiter(max, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	return lmt
}

// RateLimiter rejects requests over the limiter's budget.
func RateLimiter(lmt *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpErr := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpErr != nil {
			c.AbortWithStatusJSON(httpErr.StatusCode, dto.ErrorResponse{Error: httpErr.Message})
			return
		}
		c.Next()
	}
}
