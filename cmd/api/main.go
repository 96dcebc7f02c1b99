package main

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	cacheadapter "github.com/rajeshprivate007/taskflow-backend/internal/adapter/cache"
	dbadapter "github.com/rajeshprivate007/taskflow-backend/internal/adapter/db"
	httpadapter "github.com/rajeshprivate007/taskflow-backend/internal/adapter/http"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/handlers"
	httpmiddleware "github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/middleware"
	appservice "github.com/rajeshprivate007/taskflow-backend/internal/app/service"
	"github.com/rajeshprivate007/taskflow-backend/internal/config"
	"github.com/rajeshprivate007/taskflow-backend/internal/core/ports"
	"github.com/rajeshprivate007/taskflow-backend/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	var redisClient *redis.Client
	var statsCache ports.StatsCache
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		statsCache = cacheadapter.NewStatsCache(redisClient)
		logger.Info("stats cache enabled", zap.String("addr", cfg.RedisAddr))
	}

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	todoRepository := dbadapter.NewTodoRepository(db)
	todoService := appservice.NewTodoService(todoRepository, statsCache)
	todoHandler := handlers.NewTodoHandler(todoService)
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	httpadapter.RegisterRoutes(r, healthHandler, todoHandler, cfg.JWTSecret)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
