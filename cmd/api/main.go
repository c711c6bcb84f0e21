package main

import (
	"fmt"
	"time"

	"gotodo/configs"
	v1 "gotodo/internal/api/v1"
	"gotodo/internal/api/v1/handlers"
	"gotodo/internal/cache"
	"gotodo/internal/middleware"
	"gotodo/internal/repository"
	"gotodo/internal/token"
	"gotodo/pkg/database"
	"gotodo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"go.uber.org/zap"
)

func main() {
	logger.InitLoggers()
	defer logger.SyncLoggers()
	logger.SystemLogger.Info("Starting application", zap.String("time", time.Now().Format(time.RFC3339)))

	cfg := configs.LoadConfig()

	db := database.ConnectDB(cfg)
	defer db.Close()
	logger.SystemLogger.Info("Database Connected")

	if err := repository.EnsureSchema(db); err != nil {
		logger.ErrorLogger.Fatal("Error creating tables", zap.Error(err))
	}

	redisClient := database.ConnectRedis(cfg)
	defer redisClient.Close()

	accounts := repository.NewPostgresAccountStore(db)
	todos := repository.NewPostgresTodoStore(db)
	todoCache := cache.NewRedisTodoCache(redisClient)
	tokens := token.NewService([]byte(cfg.JWTSecret), time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	h := handlers.New(accounts, todos, todoCache, tokens, cfg.StrictTodoOwnership)

	app := fiber.New()

	// Middleware
	app.Use(middleware.ErrorHandler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
	}))

	v1.RegisterRoutes(app, h, tokens)

	logger.SystemLogger.Info("Application ready", zap.Int("port", cfg.AppPort))
	if err := app.Listen(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		logger.ErrorLogger.Error("Application failed to start", zap.Error(err))
	}
}
