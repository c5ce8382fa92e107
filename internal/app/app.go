package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	blogHTTP "blogium/internal/controller/http"
	"blogium/internal/policy"
	"blogium/internal/repo/persistent"
	"blogium/internal/usecase"
	"blogium/pkg/config"
	"blogium/pkg/jwt"
	"blogium/pkg/logger"
	"blogium/pkg/middleware"
	"blogium/pkg/queue"
	"blogium/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "blogium/docs" // Swagger docs
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret)

	// Initialize repositories
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	locationRepo := persistent.NewLocationRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, jwtService, log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, s3Client, queueClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, queueClient, log)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, postRepo, log)
	locationUseCase := usecase.NewLocationUseCase(locationRepo, log)
	profileUseCase := usecase.NewProfileUseCase(userRepo, postRepo, log)

	// Initialize HTTP handlers
	authHandler := blogHTTP.NewAuthHandler(authUseCase, log)
	postHandler := blogHTTP.NewPostHandler(postUseCase, log)
	commentHandler := blogHTTP.NewCommentHandler(commentUseCase, log)
	categoryHandler := blogHTTP.NewCategoryHandler(categoryUseCase, log)
	locationHandler := blogHTTP.NewLocationHandler(locationUseCase, log)
	profileHandler := blogHTTP.NewProfileHandler(profileUseCase, log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.Use(middleware.Identify(jwtService))
	api.Use(middleware.RateLimit(redisClient, 100, time.Minute))

	// Public routes; the identity, when present, still widens what profile
	// pages show and which posts resolve.
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)
		api.GET("/categories", categoryHandler.ListCategories)
		api.GET("/categories/:slug", categoryHandler.GetCategory)
		api.GET("/locations", locationHandler.ListLocations)
		api.GET("/profiles/:username", profileHandler.GetProfile)
	}

	// Routes for authenticated users
	authed := api.Group("")
	authed.Use(middleware.RequireAuth(policy.LoginPath))
	{
		authed.GET("/auth/me", authHandler.Me)
		authed.PUT("/profiles/me", profileHandler.UpdateProfile)

		authed.POST("/posts", postHandler.CreatePost)
		authed.PUT("/posts/:id", postHandler.UpdatePost)
		authed.DELETE("/posts/:id", postHandler.DeletePost)

		authed.POST("/posts/:id/comments", commentHandler.CreateComment)
		authed.PUT("/comments/:id", commentHandler.UpdateComment)
		authed.DELETE("/comments/:id", commentHandler.DeleteComment)
	}

	// Administrative routes
	admin := api.Group("/admin")
	admin.Use(middleware.RequireAuth(policy.LoginPath))
	admin.Use(middleware.RequireRole("admin"))
	{
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		admin.POST("/locations", locationHandler.CreateLocation)
		admin.PUT("/locations/:id", locationHandler.UpdateLocation)
		admin.DELETE("/locations/:id", locationHandler.DeleteLocation)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Blog service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down blog service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Error closing Redis: %v", err)
		}
	}

	// Close RabbitMQ connection
	if queueClient != nil {
		queueClient.Close()
	}

	// Shutdown server
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		panic(err)
	}

	log.Info("Blog service exited")
}
