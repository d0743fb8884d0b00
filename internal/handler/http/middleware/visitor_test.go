package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visitorRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Visitor())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, VisitorID(c))
	})
	return r
}

func TestVisitor_UsesHeader(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(VisitorHeader, "visitor-1234")

	visitorRouter().ServeHTTP(w, req)

	assert.Equal(t, "visitor-1234", w.Body.String())
	assert.Equal(t, "visitor-1234", w.Header().Get(VisitorHeader))
}

func TestVisitor_FallsBackToCookie(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: VisitorCookie, Value: "cookie-visitor"})

	visitorRouter().ServeHTTP(w, req)

	assert.Equal(t, "cookie-visitor", w.Body.String())
}

func TestVisitor_IssuesIDForUnsafeInput(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(VisitorHeader, "x:likedPrompts")

	visitorRouter().ServeHTTP(w, req)

	id := w.Body.String()
	assert.NotEqual(t, "x:likedPrompts", id)
	assert.Regexp(t, visitorIDPattern, id)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, VisitorCookie, cookies[0].Name)
	assert.Equal(t, id, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}
