package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	VisitorHeader     = "X-Visitor-ID"
	VisitorCookie     = "visitor_id"
	VisitorContextKey = "visitorID"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

var visitorIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// Visitor identifies the anonymous visitor behind a request. The id comes
// from the X-Visitor-ID header, then the visitor_id cookie; a fresh UUID is
// issued when neither carries a usable id.
func Visitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(VisitorHeader)
		if !visitorIDPattern.MatchString(id) {
			id, _ = c.Cookie(VisitorCookie)
		}
		if !visitorIDPattern.MatchString(id) {
			id = uuid.New().String()
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, id, visitorCookieMaxAge, "/", "", c.Request.TLS != nil, true)
		c.Header(VisitorHeader, id)
		c.Set(VisitorContextKey, id)
		c.Next()
	}
}

// VisitorID returns the id set by Visitor, or "" when the middleware did not run.
func VisitorID(c *gin.Context) string {
	return c.GetString(VisitorContextKey)
}
