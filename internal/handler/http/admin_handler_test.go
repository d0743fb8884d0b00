package http_test

import (
	"net/http"
	"testing"

	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestAdminLogin(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/login", dto.AdminLoginRequest{Email: "admin@prompaty.local", Password: "secret"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.AdminLoginResponse](t, w)
	assert.Equal(t, "mock_access_token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
}

func TestAdminLogin_Fail(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/admin/login", dto.AdminLoginRequest{Email: "admin@prompaty.local", Password: "wrong"}, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}

func TestAdminRoutesRequireToken(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header required")

	w = doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid authorization header format")

	w = doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, bearer("forged"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminStats(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/admin/stats", nil, bearer("mock_access_token"))

	require.Equal(t, http.StatusOK, w.Code)
	stats := decode[usecasecontract.DashboardStats](t, w)
	assert.Equal(t, d.admin.MockStats, stats)
}

func TestAdminSetPromptVerification(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPatch, "/api/v1/admin/prompts/p1/verification", map[string]bool{"verified": true}, bearer("mock_access_token"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"verified":true`)
	assert.True(t, d.admin.Prompts["p1"].Verified)

	w = doJSON(r, http.MethodPatch, "/api/v1/admin/prompts/p1/verification", map[string]string{}, bearer("mock_access_token"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminDeletePrompt(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodDelete, "/api/v1/admin/prompts/p1", nil, bearer("mock_access_token"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Prompt deleted successfully")

	w = doJSON(r, http.MethodDelete, "/api/v1/admin/prompts/p1", nil, bearer("mock_access_token"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminDeletePost_NotFound(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodDelete, "/api/v1/admin/posts/b9", nil, bearer("mock_access_token"))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
