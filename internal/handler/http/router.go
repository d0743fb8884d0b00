package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Prompaty/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// RouterOptions carries the cross-cutting settings of the HTTP stack.
type RouterOptions struct {
	AllowOrigins []string
	Limiter      *limiter.Limiter
	// LoginLimiter throttles admin login attempts on top of Limiter.
	LoginLimiter *limiter.Limiter
	AccessLog    *zap.Logger
}

type Router struct {
	promptHandler      *PromptHandler
	postHandler        *PostHandler
	interactionHandler *InteractionHandler
	aiHandler          *AIHandler
	adminHandler       *AdminHandler
	adminUsecase       usecasecontract.IAdminUseCase
	opts               RouterOptions
}

func NewRouter(promptUsecase usecasecontract.IPromptUseCase, postUsecase usecasecontract.IPostUseCase, likeUsecase usecasecontract.ILikeUseCase, reactionUsecase usecasecontract.IReactionUseCase, aiUsecase usecasecontract.IAIUseCase, adminUsecase usecasecontract.IAdminUseCase, opts RouterOptions) *Router {
	return &Router{
		promptHandler:      NewPromptHandler(promptUsecase),
		postHandler:        NewPostHandler(postUsecase),
		interactionHandler: NewInteractionHandler(likeUsecase, reactionUsecase),
		aiHandler:          NewAIHandler(aiUsecase),
		adminHandler:       NewAdminHandler(adminUsecase),
		adminUsecase:       adminUsecase,
		opts:               opts,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(requestid.New())
	if r.opts.AccessLog != nil {
		router.Use(middleware.RequestLogger(r.opts.AccessLog))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.opts.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.VisitorHeader, GeminiKeyHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.VisitorHeader, "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	if r.opts.Limiter != nil {
		router.Use(middleware.RateLimiter(r.opts.Limiter))
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) { MessageHandler(c, http.StatusOK, "ok") })

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Visitor())

	prompts := v1.Group("/prompts")
	{
		prompts.GET("", r.promptHandler.ListPrompts)
		prompts.POST("", r.promptHandler.CreatePrompt)
		prompts.GET("/slug-check", r.promptHandler.CheckSlug)
		prompts.GET("/liked", r.interactionHandler.GetLikedPrompts)
		prompts.GET("/:id", r.promptHandler.GetPrompt)
		prompts.GET("/:id/related", r.promptHandler.GetRelatedPrompts)
		prompts.GET("/:id/like", r.interactionHandler.GetLikeState)
		prompts.POST("/:id/like", r.interactionHandler.ToggleLike)
	}

	posts := v1.Group("/posts")
	{
		posts.GET("", r.postHandler.ListPosts)
		posts.POST("", r.postHandler.CreatePost)
		posts.GET("/slug/:slug", r.postHandler.GetPostBySlug)
		posts.GET("/:id/reactions", r.interactionHandler.GetReactions)
		posts.POST("/:id/reactions", r.interactionHandler.React)
	}

	ai := v1.Group("/ai")
	{
		ai.POST("/generate-prompt", r.aiHandler.HandleGeneratePrompt)
		ai.POST("/improve-prompt", r.aiHandler.HandleImprovePrompt)
	}

	if r.opts.LoginLimiter != nil {
		v1.POST("/admin/login", tollbooth_gin.LimitHandler(r.opts.LoginLimiter), r.adminHandler.Login)
	} else {
		v1.POST("/admin/login", r.adminHandler.Login)
	}
	admin := v1.Group("/admin")
	admin.Use(middleware.AdminAuth(r.adminUsecase))
	{
		admin.GET("/prompts", r.adminHandler.ListPrompts)
		admin.PATCH("/prompts/:id/verification", r.adminHandler.SetPromptVerification)
		admin.DELETE("/prompts/:id", r.adminHandler.DeletePrompt)
		admin.GET("/posts", r.adminHandler.ListPosts)
		admin.DELETE("/posts/:id", r.adminHandler.DeletePost)
		admin.GET("/stats", r.adminHandler.Stats)
	}
}
