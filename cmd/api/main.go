package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"kivulounge/internal/config"
	"kivulounge/internal/database"
	"kivulounge/internal/jobs"
	"kivulounge/internal/middleware"
	"kivulounge/internal/modules/admin"
	"kivulounge/internal/modules/auth"
	"kivulounge/internal/modules/booking"
	"kivulounge/internal/modules/catalog"
	"kivulounge/internal/modules/chat"
	"kivulounge/internal/modules/upload"
	"kivulounge/internal/notification"
	jwtsvc "kivulounge/internal/pkg/jwt"
	"kivulounge/internal/pkg/logger"
	"kivulounge/internal/repository"
)

func main() {
	logger.InitLoggers()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		logger.ErrorLogger.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.ErrorLogger.Errorf("redis unavailable, continuing without cache: %v", err)
			rdb = nil
		}
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	chatRepo := repository.NewChatRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	mailer := notification.NewMailer(cfg)

	var roomCache *catalog.RedisRoomCache
	if rdb != nil {
		roomCache = catalog.NewRedisRoomCache(rdb, 5*time.Minute)
	}

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	var catalogCache catalog.RoomCache
	if roomCache != nil {
		catalogCache = roomCache
	}
	catalogService := catalog.NewService(roomRepo, catalogCache)
	catalogHandler := catalog.NewHandler(catalogService)

	bookingService := booking.NewService(bookingRepo, roomRepo, mailer, cfg.WhatsAppNumber, cfg.StoreTimeout)
	bookingHandler := booking.NewHandler(bookingService)

	var adminCache admin.RoomCache
	if roomCache != nil {
		adminCache = roomCache
	}
	adminService := admin.NewService(bookingRepo, roomRepo, adminCache, mailer)
	adminHandler := admin.NewHandler(adminService)

	hub := chat.NewHub()
	defer hub.Close()
	chatService := chat.NewService(chatRepo, hub)
	chatHandler := chat.NewHandler(chatService, hub)

	var uploadCache upload.RoomCache
	if roomCache != nil {
		uploadCache = roomCache
	}
	uploadService, err := upload.NewService(cfg.CloudinaryURL, roomRepo, uploadCache)
	if err != nil {
		logger.ErrorLogger.Fatal(err)
	}
	uploadHandler := upload.NewHandler(uploadService)

	scheduler := jobs.NewScheduler(bookingRepo)
	if err := scheduler.Start(); err != nil {
		logger.ErrorLogger.Fatal(err)
	}
	defer scheduler.Stop()

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		// optionally authenticated: anonymous booking submissions get the
		// manual-contact handoff, guests can chat without an account
		open := v1.Group("/")
		open.Use(middleware.OptionalJWTAuth(j))
		open.Use(middleware.RateLimit(rdb, "20-M", "open"))

		authed := v1.Group("/")
		authed.Use(middleware.JWTAuth(j))

		adminGroup := v1.Group("/admin")
		adminGroup.Use(middleware.JWTAuth(j), middleware.AdminOnly())

		bookingHandler.RegisterRoutes(open, authed)
		chatHandler.RegisterRoutes(open, adminGroup)
		adminHandler.RegisterRoutes(adminGroup)
		uploadHandler.RegisterRoutes(adminGroup)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.InfoLogger.Printf("listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.InfoLogger.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.ErrorLogger.Errorf("shutdown: %v", err)
	}
}
