package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/Prompaty/internal/domain/contract"
	"github.com/mikiasgoitom/Prompaty/internal/domain/entity"
	handlerHttp "github.com/mikiasgoitom/Prompaty/internal/handler/http"
	"github.com/mikiasgoitom/Prompaty/internal/handler/http/middleware"
	redisclient "github.com/mikiasgoitom/Prompaty/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Prompaty/internal/infrastructure/database"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Prompaty/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/Prompaty/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/repository/memory"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/store"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Prompaty/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Prompaty/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

// loginRate is the number of admin login attempts allowed per second and IP.
const loginRate = 0.2

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional MongoDB connection
	var db *mongo.Database
	if cfg.MongoURI != "" {
		mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
		if err != nil {
			appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		defer mongoClient.Disconnect()
		db = mongoClient.Client.Database(cfg.MongoDBName)
	}

	// Optional Redis connection
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		rdb, err = redisclient.NewRedisFromURL(ctx, cfg.RedisURL, appLogger)
		if err != nil {
			appLogger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisclient.Close(rdb, appLogger)
	}

	// Dependency Injection: Repositories
	var (
		promptRepo contract.IPromptRepository
		postRepo   contract.IPostRepository
	)
	if db != nil {
		promptRepo = mongodb.NewPromptRepository(db)
		postRepo = mongodb.NewPostRepository(db)
		appLogger.Infof("content repositories: mongodb (%s)", cfg.MongoDBName)
	} else {
		promptRepo = memory.NewPromptRepository(memory.SeedPrompts())
		postRepo = memory.NewPostRepository(memory.SeedPosts())
		appLogger.Infof("content repositories: in-memory seed data")
	}

	var contentCache contract.IContentCache
	if rdb != nil {
		contentCache = store.NewContentCacheStore(rdb, cfg.ContentCacheTTL)
	}

	var preferences contract.IKeyValueStore
	switch cfg.PreferenceBackend {
	case config.PreferenceBackendRedis:
		preferences = store.NewRedisStore(rdb)
	case config.PreferenceBackendMongo:
		preferences = mongodb.NewPreferenceRepository(db)
	default:
		preferences = store.NewMemoryStore()
	}
	appLogger.Infof("visitor preferences: %s", cfg.PreferenceBackend)

	sessions := usecase.NewSessionRegistry(store.NewVisitorScope(preferences), appLogger, cfg.GetSessionTTL())
	defer sessions.Stop()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	uuidGenerator := uuidgen.NewGenerator()
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	validator.RegisterCustomValidators()

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		appLogger.Warningf("JWT_SECRET not set, admin tokens will not survive a restart")
		jwtSecret = uuidGenerator.NewUUID() + uuidGenerator.NewUUID()
	}
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(jwtSecret, cfg.GetAdminTokenExpiry()))

	aiService := external_services.NewGeminiAIService()
	defer aiService.Stop()

	// Dependency Injection: Usecases
	promptUsecase := usecase.NewPromptUseCase(promptRepo, contentCache, uuidGenerator, randomGenerator, appValidator, appLogger, memory.DefaultAuthor)
	postUsecase := usecase.NewPostUseCase(postRepo, uuidGenerator, appValidator, appLogger, memory.DefaultAuthor)
	likeUsecase := usecase.NewLikeUsecase(sessions, promptRepo, contentCache, appLogger)
	reactionUsecase := usecase.NewReactionUsecase(sessions, postRepo, contentCache, appLogger)
	aiUsecase := usecase.NewAIUseCase(aiService, cfg.GetAIServiceAPIKey())
	admin := entity.Admin{
		ID:           "admin",
		Email:        cfg.AdminEmail,
		PasswordHash: cfg.AdminPasswordHash,
		Role:         entity.UserRoleAdmin,
	}
	adminUsecase := usecase.NewAdminUsecase(admin, promptRepo, postRepo, contentCache, hasher, jwtService, appLogger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		promptUsecase, postUsecase, likeUsecase, reactionUsecase, aiUsecase, adminUsecase,
		handlerHttp.RouterOptions{
			AllowOrigins: cfg.CORSOrigins,
			Limiter:      middleware.NewLimiter(cfg.RateLimit),
			LoginLimiter: middleware.NewLimiter(loginRate),
			AccessLog:    appLogger.Zap(),
		},
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}
	go func() {
		appLogger.Infof("Server running on port %s (%s)", cfg.Port, cfg.GetAppBaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
