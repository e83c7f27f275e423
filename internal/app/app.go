package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpController "streamtube/internal/controller/http"
	"streamtube/internal/repo/persistent"
	"streamtube/internal/usecase"
	"streamtube/pkg/config"
	"streamtube/pkg/jwt"
	"streamtube/pkg/logger"
	"streamtube/pkg/middleware"
	"streamtube/pkg/queue"
	"streamtube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	surrealdb "github.com/surrealdb/surrealdb.go"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func Run(cfg *config.Config, log *logger.Logger, db *surrealdb.DB, s3Client *s3.Client, queueClient *queue.Client, redisClient *redis.Client) {
	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Repositories
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)
	playlistRepo := persistent.NewPlaylistRepository(db)
	tweetRepo := persistent.NewTweetRepository(db)
	dashboardRepo := persistent.NewDashboardRepository(db)

	// Use cases
	userUseCase := usecase.NewUserUseCase(userRepo, jwtService, s3Client, log)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, s3Client, redisClient, queueClient, log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo)
	likeUseCase := usecase.NewLikeUseCase(likeRepo)
	subscriptionUseCase := usecase.NewSubscriptionUseCase(subscriptionRepo)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, videoRepo)
	tweetUseCase := usecase.NewTweetUseCase(tweetRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(dashboardRepo)

	// HTTP handlers
	userHandler := httpController.NewUserHandler(userUseCase, cfg, log)
	videoHandler := httpController.NewVideoHandler(videoUseCase, log)
	commentHandler := httpController.NewCommentHandler(commentUseCase)
	likeHandler := httpController.NewLikeHandler(likeUseCase)
	subscriptionHandler := httpController.NewSubscriptionHandler(subscriptionUseCase)
	playlistHandler := httpController.NewPlaylistHandler(playlistUseCase)
	tweetHandler := httpController.NewTweetHandler(tweetUseCase)
	dashboardHandler := httpController.NewDashboardHandler(dashboardUseCase)
	healthHandler := httpController.NewHealthHandler(db)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	api.GET("/healthcheck", healthHandler.Check)

	auth := middleware.AuthMiddleware(jwtService)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtService)
	rateLimit := middleware.RateLimitMiddleware(redisClient, 100, time.Minute)

	users := api.Group("/users")
	{
		users.POST("/register", userHandler.Register)
		users.POST("/login", userHandler.Login)
		users.POST("/refresh-token", userHandler.RefreshToken)
		users.POST("/logout", auth, userHandler.Logout)
		users.POST("/change-password", auth, rateLimit, userHandler.ChangePassword)
		users.GET("/current", auth, userHandler.CurrentUser)
		users.PATCH("/update-account", auth, userHandler.UpdateAccount)
		users.PATCH("/avatar", auth, userHandler.UpdateAvatar)
		users.PATCH("/cover-image", auth, userHandler.UpdateCoverImage)
		users.GET("/c/:username", optionalAuth, userHandler.ChannelProfile)
		users.GET("/history", auth, userHandler.WatchHistory)
	}

	videos := api.Group("/videos")
	{
		videos.GET("", optionalAuth, videoHandler.List)
		videos.POST("", auth, rateLimit, videoHandler.Publish)
		videos.GET("/:id", optionalAuth, videoHandler.GetByID)
		videos.PATCH("/:id", auth, videoHandler.Update)
		videos.DELETE("/:id", auth, videoHandler.Delete)
		videos.PATCH("/:id/toggle-publish", auth, videoHandler.TogglePublish)
	}

	comments := api.Group("/comments")
	{
		comments.GET("/:videoId", optionalAuth, commentHandler.ListForVideo)
		comments.POST("/:videoId", auth, rateLimit, commentHandler.Add)
		comments.PATCH("/c/:id", auth, commentHandler.Update)
		comments.DELETE("/c/:id", auth, commentHandler.Delete)
	}

	likes := api.Group("/likes", auth)
	{
		likes.POST("/toggle/v/:videoId", likeHandler.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", likeHandler.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", likeHandler.ToggleTweetLike)
		likes.GET("/videos", likeHandler.LikedVideos)
	}

	subscriptions := api.Group("/subscriptions")
	{
		subscriptions.POST("/c/:channelId", auth, subscriptionHandler.Toggle)
		subscriptions.GET("/c/:channelId", subscriptionHandler.Subscribers)
		subscriptions.GET("/u/:subscriberId", subscriptionHandler.SubscribedChannels)
	}

	playlists := api.Group("/playlists")
	{
		playlists.POST("", auth, playlistHandler.Create)
		playlists.GET("/:id", optionalAuth, playlistHandler.GetByID)
		playlists.GET("/user/:userId", optionalAuth, playlistHandler.ListForUser)
		playlists.PATCH("/:id", auth, playlistHandler.Update)
		playlists.DELETE("/:id", auth, playlistHandler.Delete)
		playlists.PATCH("/:id/videos/:videoId", auth, playlistHandler.AddVideo)
		playlists.DELETE("/:id/videos/:videoId", auth, playlistHandler.RemoveVideo)
	}

	tweets := api.Group("/tweets")
	{
		tweets.POST("", auth, rateLimit, tweetHandler.Create)
		tweets.GET("/user/:userId", optionalAuth, tweetHandler.ListForUser)
		tweets.PATCH("/:id", auth, tweetHandler.Update)
		tweets.DELETE("/:id", auth, tweetHandler.Delete)
	}

	dashboard := api.Group("/dashboard", auth)
	{
		dashboard.GET("/stats", dashboardHandler.Stats)
		dashboard.GET("/videos", dashboardHandler.Videos)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info("server starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server: %v", err)
			panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown: %v", err)
	}

	if err := db.Close(ctx); err != nil {
		log.Error("error closing store connection: %v", err)
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("error closing redis: %v", err)
		}
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			log.Error("error closing queue: %v", err)
		}
	}

	log.Info("server exited")
}
