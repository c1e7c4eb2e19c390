package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/dycart/fleet-backoffice/handlers"
	"github.com/dycart/fleet-backoffice/internal/auth"
	"github.com/dycart/fleet-backoffice/internal/config"
	"github.com/dycart/fleet-backoffice/internal/model"
	"github.com/dycart/fleet-backoffice/internal/sessions"
	"github.com/dycart/fleet-backoffice/internal/storage"
	"github.com/dycart/fleet-backoffice/internal/store"
	"github.com/dycart/fleet-backoffice/pkg/logger"
	"github.com/dycart/fleet-backoffice/pkg/metrics"
	"github.com/dycart/fleet-backoffice/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// logging level is controlled with LOG_LEVEL env: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: data_dir=%s redis=%v", cfg.Data.Dir, cfg.Redis.Host != "")

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate limiter and token blacklist can use it
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(context.Background()).Err(); err == nil {
			sessions.SetBlacklistClient(redisClient)
			logger.Infof("Connected to Redis for optional features: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		} else {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		}
	}

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Resource collections, each backed by one flat JSON file. A missing or
	// unreadable file is recreated from the built-in seed data.
	courses, err := store.New(model.GolfCourseStore(filepath.Join(cfg.Data.Dir, "golf_courses_data.json")))
	if err != nil {
		logger.Fatalf("golf-course store: %v", err)
	}
	carts, err := store.New(model.CartStore(filepath.Join(cfg.Data.Dir, "carts_data.json")))
	if err != nil {
		logger.Fatalf("cart store: %v", err)
	}
	cartModels, err := store.New(model.CartModelStore(filepath.Join(cfg.Data.Dir, "cart_models_data.json")))
	if err != nil {
		logger.Fatalf("cart-model store: %v", err)
	}
	maps, err := store.New(model.MapStore(filepath.Join(cfg.Data.Dir, "maps_data.json")))
	if err != nil {
		logger.Fatalf("map store: %v", err)
	}
	users, err := store.New(model.UserStore(filepath.Join(cfg.Data.Dir, "users_data.json")))
	if err != nil {
		logger.Fatalf("user store: %v", err)
	}

	// Upload backend: MinIO when configured, local disk otherwise
	var files storage.Storage
	if mcfg := storage.LoadMinIOConfig(); mcfg.Endpoint != "" {
		ms, err := storage.NewMinIOStorage(mcfg)
		if err != nil {
			logger.Warnf("minio unavailable, falling back to local uploads: %v", err)
		} else {
			files = ms
			logger.Infof("using MinIO for uploads: %s/%s", mcfg.Endpoint, mcfg.Bucket)
		}
	}
	if files == nil {
		local := storage.NewLocalStorage(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
		files = local
		r.Static(cfg.Uploads.BaseURL, local.Root())
	}

	authSvc := auth.NewService(cfg, users)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness: the JSON stores load at startup, so readiness only gates on
	// Redis when a Redis-backed feature is enabled
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{"storage": true}
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if !deps["redis"] {
				ready = false
			}
		} else {
			deps["redis"] = true
		}
		status := http.StatusOK
		state := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			state = "not_ready"
		}
		c.JSON(status, gin.H{"status": state, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	api := r.Group("/api")
	handlers.NewAuthHandler(cfg, authSvc, users).Register(api)
	handlers.NewGolfCourseHandler(courses).Register(api)
	cartHandler := handlers.NewCartHandler(carts, cartModels, courses)
	cartHandler.Register(api)
	cartHandler.RegisterScoped(api)
	handlers.NewCartModelHandler(cartModels).Register(api)
	handlers.NewMapHandler(maps, courses, files).Register(api)
	handlers.NewUserHandler(users).Register(api)
	handlers.NewAddressHandler().Register(api)

	handlers.RegisterSwagger(r)

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting backoffice API on %s (env=%s)", addr, cfg.Server.Environment)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
