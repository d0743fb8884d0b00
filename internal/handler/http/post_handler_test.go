package http_test

import (
	"net/http"
	"testing"

	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPosts(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts?page=1&page_size=10", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PaginatedPostResponse](t, w)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, 1, resp.Pagination.TotalPages)
}

func TestListPosts_InvalidPage(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts?page=zero", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid page number")
}

func TestListPosts_PageTooLarge(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts?page=100000000000000000", nil, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid page number")
}

func TestListPosts_Failure(t *testing.T) {
	d := newTestDeps()
	d.posts.ShouldFailList = true
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts", nil, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to list posts")
}

func TestGetPostBySlug(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts/slug/how-to-write-effective-prompts", nil, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.PostDetailResponse](t, w)
	assert.Equal(t, "b1", resp.Post.ID)
	assert.Equal(t, 4, resp.Post.Views)
	assert.Equal(t, "مرحبا", resp.Excerpt)
}

func TestGetPostBySlug_NotFound(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodGet, "/api/v1/posts/slug/missing", nil, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePost(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/posts", dto.CreatePostRequest{
		Title:   "مقال جديد",
		Content: "سطر أول\nسطر ثان",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"post-new"`)
}

func TestCreatePost_MissingContent(t *testing.T) {
	d := newTestDeps()
	r := setupRouter(d)

	w := doJSON(r, http.MethodPost, "/api/v1/posts", dto.CreatePostRequest{Title: "بدون محتوى"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Field validation for 'Content' failed on the 'required' tag")
}
