package main

import (
	"context"
	"log"
	"net/http"

	"addressbook/internal/api"
	"addressbook/internal/config"
	"addressbook/internal/middleware"
	"addressbook/internal/repository"
	"addressbook/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig()

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup the Redis client; caching is optional and off without an address
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Wire repositories and services
	userRepo := repository.NewUserRepository(db)
	addressRepo := repository.NewAddressRepository(db)
	userService := service.NewUserService(userRepo, addressRepo)
	addressService := service.NewAddressService(addressRepo, userRepo)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	api.SetupValidator()
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Mutating routes take the JWT guard only when AUTH_REQUIRED is set
	guard := func(c *gin.Context) { c.Next() }
	if cfg.AuthRequired {
		guard = middleware.JWTAuthMiddleware(cfg.JWTSecret)
	}

	// Auth routes
	r.POST("/api/auth/login", api.LoginHandler(userService, cfg.JWTSecret))

	// User routes
	users := r.Group("/api/users")
	users.GET("", api.GetUsersHandler(userService, redisClient, cfg.CacheTTL))
	users.GET("/search-by-address", api.SearchUsersByAddressHandler(userService))
	users.GET("/:id", api.GetUserHandler(userService))
	// User creation doubles as registration, so it stays open even with auth on
	users.POST("", api.CreateUserHandler(userService, redisClient))
	users.PUT("/:id", guard, api.UpdateUserHandler(userService, redisClient))
	users.DELETE("/:id", guard, api.DeleteUserHandler(userService, redisClient))

	// Address routes
	addresses := r.Group("/api/addresses")
	addresses.GET("", api.GetAddressesHandler(addressService, redisClient, cfg.CacheTTL))
	addresses.GET("/:id", api.GetAddressHandler(addressService))
	addresses.POST("", guard, api.CreateAddressHandler(addressService, redisClient))
	addresses.PUT("/:id", guard, api.UpdateAddressHandler(addressService, redisClient))
	addresses.DELETE("/:id", guard, api.DeleteAddressHandler(addressService, redisClient))

	// Operational endpoints
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	log.Println("Server running on " + cfg.AppPort)
	r.Run(":" + cfg.AppPort)
}
