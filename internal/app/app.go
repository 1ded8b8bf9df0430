package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apihttp "music-library/internal/controller/http"
	"music-library/internal/repo/persistent"
	"music-library/internal/usecase"
	"music-library/pkg/cache"
	"music-library/pkg/config"
	"music-library/pkg/database"
	"music-library/pkg/jwt"
	"music-library/pkg/logger"
	"music-library/pkg/middleware"
	"music-library/pkg/queue"
	"music-library/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "music-library/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	queueClient *queue.Client
	jwtService  *jwt.Service
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without live broadcast)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		queueClient: queueClient,
		jwtService:  jwtService,
	}, nil
}

func (a *App) Run() error {
	// Repositories
	userRepo := persistent.NewUserRepository(a.db)
	songRepo := persistent.NewSongRepository(a.db)
	playlistRepo := persistent.NewPlaylistRepository(a.db)
	notificationRepo := persistent.NewNotificationRepository(a.db)

	// Use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.log)
	songUseCase := usecase.NewSongUseCase(songRepo, a.s3Client, a.log)
	playlistUseCase := usecase.NewPlaylistUseCase(playlistRepo, songRepo, a.log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, a.redisClient, a.queueClient, a.log)

	// HTTP handlers
	authHandler := apihttp.NewAuthHandler(authUseCase)
	songHandler := apihttp.NewSongHandler(songUseCase)
	playlistHandler := apihttp.NewPlaylistHandler(playlistUseCase)
	notificationHandler := apihttp.NewNotificationHandler(notificationUseCase)

	// Broadcast delivery worker
	if a.queueClient != nil {
		if err := a.queueClient.ConsumeBroadcastTasks(notificationUseCase.HandleBroadcastTask); err != nil {
			a.log.Error("Failed to start broadcast consumer: %v", err)
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/profile", middleware.AuthMiddleware(a.jwtService), authHandler.Profile)
	}

	songs := api.Group("/songs", middleware.AuthMiddleware(a.jwtService))
	{
		songs.GET("", songHandler.List)
		songs.GET("/:id", songHandler.Get)
		songs.GET("/name/:name", songHandler.SearchByName())
		songs.GET("/album/:album", songHandler.SearchByAlbum())
		songs.GET("/music-director/:musicDirector", songHandler.SearchByMusicDirector())
		songs.GET("/singer/:singer", songHandler.SearchBySinger())

		admin := songs.Group("", middleware.AdminMiddleware())
		{
			admin.POST("", songHandler.Create)
			admin.PUT("/:id", songHandler.Update)
			admin.DELETE("/:id", songHandler.Delete)
			admin.PUT("/visibility/:id", songHandler.SetVisibility)
			admin.POST("/:id/image", songHandler.UploadImage)
		}
	}

	playlists := api.Group("/playlists", middleware.AuthMiddleware(a.jwtService))
	{
		playlists.POST("", playlistHandler.Create)
		playlists.GET("", playlistHandler.List)
		playlists.GET("/:id", playlistHandler.Get)
		playlists.PUT("/:id", playlistHandler.Update)
		playlists.DELETE("/:id", playlistHandler.Delete)
		playlists.POST("/:id/songs", playlistHandler.AddSongs)
		playlists.DELETE("/:id/songs", playlistHandler.RemoveSong)
		playlists.POST("/search", playlistHandler.Search)
		playlists.PUT("/:id/play", playlistHandler.Play)
		playlists.PUT("/:id/stop", playlistHandler.Stop)
		playlists.PUT("/:id/shuffle", playlistHandler.Shuffle)
		playlists.PUT("/:id/repeat", playlistHandler.Repeat)
	}

	notifications := api.Group("/notifications", middleware.AuthMiddleware(a.jwtService))
	{
		notifications.GET("", notificationHandler.List)
		notifications.GET("/:id", notificationHandler.Get)

		admin := notifications.Group("", middleware.AdminMiddleware())
		{
			admin.POST("", notificationHandler.Create)
			admin.PUT("/:id", notificationHandler.Update)
			admin.DELETE("/:id", notificationHandler.Delete)
		}
	}

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	go func() {
		a.log.Info("Music library API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down music library API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Music library API exited")
	return nil
}
