package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/dto"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
)

type PostHandler struct {
	postUsecase usecasecontract.IPostUseCase
}

func NewPostHandler(postUsecase usecasecontract.IPostUseCase) *PostHandler {
	return &PostHandler{postUsecase: postUsecase}
}

// ListPosts handles GET /posts?page=&page_size=.
func (h *PostHandler) ListPosts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 || page > usecase.MaxPage {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(usecase.DefaultPostPageSize)))
	if err != nil || pageSize < 1 || pageSize > 100 {
		ErrorHandler(c, http.StatusBadRequest, "Invalid page size")
		return
	}

	posts, total, err := h.postUsecase.ListPosts(c.Request.Context(), page, pageSize)
	if err != nil {
		RespondWithError(c, err, "Failed to list posts")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedPostResponse{
		Posts:      posts,
		Pagination: dto.NewPagination(total, page, pageSize),
	})
}

// GetPostBySlug returns the post and counts the view.
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, excerpt, err := h.postUsecase.GetPostBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		RespondWithError(c, err, "Failed to load post")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PostDetailResponse{Post: post, Excerpt: excerpt})
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	post, err := h.postUsecase.CreatePost(c.Request.Context(), usecasecontract.CreatePostInput{
		Title:         req.Title,
		Slug:          req.Slug,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Tags:          req.Tags,
	})
	if err != nil {
		RespondWithError(c, err, "Failed to create post")
		return
	}
	SuccessHandler(c, http.StatusCreated, post)
}
