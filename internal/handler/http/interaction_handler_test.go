package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVisitor = "visitor-0001"

var visitorHeaders = map[string]string{middleware.VisitorHeader: testVisitor}

func TestGetLikeState(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts/p1/like", nil, visitorHeaders)

	require.Equal(t, http.StatusOK, w.Code)
	state := decode[usecasecontract.LikeState](t, w)
	assert.Equal(t, usecasecontract.LikeState{PromptID: "p1", IsLiked: false, LikeCount: 10}, state)
	assert.Equal(t, testVisitor, d.likes.LastVisitorID)
}

func TestToggleLike_TwiceRestores(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/prompts/p1/like", nil, visitorHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":true`)
	assert.Contains(t, w.Body.String(), `"like_count":11`)

	w = doJSON(r, http.MethodPost, "/api/v1/prompts/p1/like", nil, visitorHeaders)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_liked":false`)
	assert.Contains(t, w.Body.String(), `"like_count":10`)
}

func TestToggleLike_PromptNotFound(t *testing.T) {
	d := newTestDeps()
	d.likes.PromptNotFound = true
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/prompts/missing/like", nil, visitorHeaders)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "prompt not found")
}

func TestToggleLike_InternalErrorIsHidden(t *testing.T) {
	d := newTestDeps()
	d.likes.ShouldFailToggle = true
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/prompts/p1/like", nil, visitorHeaders)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to toggle like")
	assert.NotContains(t, w.Body.String(), "toggle failed")
}

func TestVisitorCookieIssuedWhenMissing(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts/p1/like", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	issued := w.Header().Get(middleware.VisitorHeader)
	assert.NotEmpty(t, issued)
	assert.Equal(t, issued, d.likes.LastVisitorID)

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.VisitorCookie {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, issued, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestVisitorCookieIsReused(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/prompts/p1/like", nil)
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: "cookie-visitor-42"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cookie-visitor-42", d.likes.LastVisitorID)
}

func TestVisitorHeaderRejectsUnsafeIDs(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts/p1/like", nil, map[string]string{middleware.VisitorHeader: "a:b:likedPrompts"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEqual(t, "a:b:likedPrompts", d.likes.LastVisitorID)
	assert.NotEmpty(t, d.likes.LastVisitorID)
}

func TestGetLikedPrompts(t *testing.T) {
	d := newTestDeps()
	d.likes.LikedPrompts = []*entity.Prompt{{ID: "p4", Title: "مراجعة كود Go", Category: entity.PromptCategoryCode}}
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/prompts/liked", nil, visitorHeaders)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"p4"`)
	assert.Contains(t, w.Body.String(), `"category_label":"برمجة"`)
}

func TestGetReactions(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts/b1/reactions", nil, visitorHeaders)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"post_id":"b1","reactions":{"heart":5,"insightful":2,"funny":0,"fire":1},"user_reaction":null}`, w.Body.String())
}

func TestReact(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/posts/b1/reactions", map[string]string{"reaction": "fire"}, visitorHeaders)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.ReactionFire, d.reactions.LastReaction)
	assert.Contains(t, w.Body.String(), `"user_reaction":"fire"`)
	assert.Contains(t, w.Body.String(), `"fire":2`)
}

func TestReact_InvalidReaction(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/posts/b1/reactions", map[string]string{"reaction": "thumbs"}, visitorHeaders)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "'reaction' tag")
	assert.Empty(t, d.reactions.LastReaction)
}

func TestReact_PostNotFound(t *testing.T) {
	d := newTestDeps()
	d.reactions.PostNotFound = true
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/posts/nope/reactions", map[string]string{"reaction": "heart"}, visitorHeaders)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
