package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"

	"github.com/mentora-labs/mentora-go-api/internal/config"
	"github.com/mentora-labs/mentora-go-api/internal/database"
	"github.com/mentora-labs/mentora-go-api/internal/events"
	"github.com/mentora-labs/mentora-go-api/internal/handler"
	"github.com/mentora-labs/mentora-go-api/internal/middleware"
	"github.com/mentora-labs/mentora-go-api/internal/models"
	"github.com/mentora-labs/mentora-go-api/internal/repository"
	"github.com/mentora-labs/mentora-go-api/internal/router"
	"github.com/mentora-labs/mentora-go-api/internal/service"
	"github.com/mentora-labs/mentora-go-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.QuizSubmission{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	var natsConn *nats.Conn
	if cfg.NATSURL != "" {
		natsConn, err = nats.Connect(cfg.NATSURL)
		if err != nil {
			logger.Warn().Err(err).Msg("nats unavailable, domain events disabled")
		} else {
			defer natsConn.Close()
		}
	}

	var generator ai.Generator
	if cfg.OpenAIAPIKey != "" {
		openaiGenerator, err := ai.NewOpenAIGenerator(ai.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
			Logger: logger,
		})
		if err != nil {
			log.Fatalf("failed to create question generator: %v", err)
		}
		generator = openaiGenerator
	} else {
		logger.Warn().Msg("openai api key missing, quizzes served from fallback bank")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	publisher := events.NewPublisher(natsConn, cfg.EventSubjectBase, logger)

	userRepo := repository.NewUserRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	engine := service.NewRecommendationEngine(logger)
	authService := service.NewAuthService(userRepo, publisher, validate, cfg.JWTSecret, cfg.JWTTTL, logger)
	userService := service.NewUserService(userRepo, validate, logger)
	quizService := service.NewQuizService(userRepo, submissionRepo, engine, generator, publisher, validate, cfg.QuizQuestionCount, logger)
	analyticsService := service.NewAnalyticsService(userRepo, submissionRepo, engine, redisClient, cfg.AnalyticsCacheTTL, logger)

	if cfg.SeedEnabled {
		seedService := service.NewSeedService(userRepo, submissionRepo, logger)
		if err := seedService.Seed(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to seed database")
		}
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:      handler.NewAuthHandler(authService, logger),
		QuizHandler:      handler.NewQuizHandler(quizService, logger),
		AnalyticsHandler: handler.NewAnalyticsHandler(analyticsService, logger),
		ProfileHandler:   handler.NewProfileHandler(userService, logger),
		ClassHandler:     handler.NewClassHandler(userService, logger),
		AdminHandler:     handler.NewAdminHandler(userService, logger),
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
