package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meshitomo/config"
	"meshitomo/internal/handler"
	"meshitomo/internal/model"
	"meshitomo/internal/repository"
	"meshitomo/internal/service"
	dbPkg "meshitomo/pkg/db"
	"meshitomo/pkg/jwt"
	"meshitomo/pkg/logger"
	"meshitomo/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	log := logger.InitLogger(cfg.Log)
	defer log.Sync()

	log.Info("=== meshitomo starting ===")
	log.Info("server configuration",
		zap.String("port", cfg.Server.Port),
		zap.String("database_host", cfg.Database.Host),
		zap.Int("database_port", cfg.Database.Port),
		zap.String("database_name", cfg.Database.Database),
		zap.Duration("jwt_expire_time", cfg.JWT.ExpireTime),
		zap.String("log_level", cfg.Log.Level),
	)

	database, err := dbPkg.InitDB(cfg.Database)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer func() {
		if err := dbPkg.CloseDB(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	if err := dbPkg.AutoMigrate(
		&model.User{},
		&model.UserIcon{},
		&model.Shop{},
		&model.Favorite{},
		&model.Friendship{},
		&model.Follow{},
	); err != nil {
		log.Fatal("auto migration failed", zap.Error(err))
	}
	log.Info("auto migration done")

	jwtSvc := jwt.NewJWTService(cfg.JWT)

	userSvc := service.NewUserService(repository.NewUserRepository(database), jwtSvc)
	favoriteSvc := service.NewFavoriteService(repository.NewFavoriteRepository(database))
	friendshipSvc := service.NewFriendshipService(repository.NewFriendshipRepository(database))
	followSvc := service.NewFollowService(repository.NewFollowRepository(database))
	shopSvc := service.NewShopService(repository.NewShopRepository(database))

	userHandler := handler.NewUserHandler(userSvc)
	favoriteHandler := handler.NewFavoriteHandler(favoriteSvc)
	friendHandler := handler.NewFriendHandler(friendshipSvc)
	followHandler := handler.NewFollowHandler(followSvc)
	shopHandler := handler.NewShopHandler(shopSvc)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(logger.LoggerMiddleware())
	router.Use(logger.RecoveryMiddleware())

	setupBasicRoutes(router)

	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)

			authUsers := users.Group("")
			authUsers.Use(jwtSvc.AuthMiddleware())
			{
				authUsers.GET("/profile", userHandler.GetProfile)
				authUsers.PUT("/name", userHandler.UpdateUserName)
				authUsers.PUT("/email", userHandler.UpdateEmail)
				authUsers.PUT("/password", userHandler.UpdatePassword)
				authUsers.PUT("/profile-photo", userHandler.UpdateProfilePhoto)
				authUsers.GET("/search", userHandler.SearchUsers)
			}
		}

		shops := v1.Group("/shops")
		{
			// Search works logged out too; a session only adds is_favorite.
			shops.GET("/search", jwtSvc.OptionalAuthMiddleware(), shopHandler.Search)
			shops.GET("", shopHandler.ListAll)
		}

		favorites := v1.Group("/favorites")
		favorites.Use(jwtSvc.AuthMiddleware())
		{
			favorites.GET("", favoriteHandler.List)
			favorites.PUT("", favoriteHandler.Sync)
			favorites.PATCH("", favoriteHandler.Diff)
			favorites.DELETE("/:shop_id", favoriteHandler.Remove)
		}

		friends := v1.Group("/friends")
		friends.Use(jwtSvc.AuthMiddleware())
		{
			friends.GET("", friendHandler.List)
			friends.POST("", friendHandler.Add)
			friends.GET("/:friend_id", friendHandler.Check)
			friends.DELETE("/:friend_id", friendHandler.Remove)
		}

		follows := v1.Group("/follows")
		follows.Use(jwtSvc.AuthMiddleware())
		{
			follows.POST("", followHandler.Follow)
			follows.GET("/following", followHandler.Following)
			follows.GET("/followers", followHandler.Followers)
			follows.GET("/:followed_id", followHandler.Check)
			follows.DELETE("/:followed_id", followHandler.Unfollow)
		}
	}

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("http server listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}

	log.Info("server stopped")
}

func setupBasicRoutes(router *gin.Engine) {
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		if err := dbPkg.HealthCheck(); err != nil {
			status = "db-down"
		}
		response.Success(c, gin.H{
			"status": status,
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	router.GET("/", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "meshitomo api",
			"version": "1.0.0",
		})
	})
}
