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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lyfjs/gomis-go-api/internal/config"
	"github.com/lyfjs/gomis-go-api/internal/database"
	"github.com/lyfjs/gomis-go-api/internal/handler"
	"github.com/lyfjs/gomis-go-api/internal/middleware"
	"github.com/lyfjs/gomis-go-api/internal/models"
	"github.com/lyfjs/gomis-go-api/internal/repository"
	"github.com/lyfjs/gomis-go-api/internal/router"
	"github.com/lyfjs/gomis-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Appointment{},
		&models.User{},
		&models.Violation{},
		&models.Incident{},
		&models.Session{},
		&models.ActivityLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	violationRepo := repository.NewViolationRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)

	propagator := service.NewStatusPropagator(violationRepo, activityRepo, logger)
	tokens := service.TokenIssuer{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL}

	studentService := service.NewStudentService(studentRepo, validate, redisClient, cfg.MetaCacheTTL, logger)
	appointmentService := service.NewAppointmentService(appointmentRepo, validate, logger)
	userService := service.NewUserService(userRepo, validate, tokens, logger)
	violationService := service.NewViolationService(violationRepo, validate, logger)
	incidentService := service.NewIncidentService(incidentRepo, propagator, validate, logger)
	sessionService := service.NewSessionService(sessionRepo, propagator, validate, logger)

	deps := router.Dependencies{
		StudentHandler:     handler.NewStudentHandler(studentService, logger),
		AppointmentHandler: handler.NewAppointmentHandler(appointmentService, logger),
		UserHandler:        handler.NewUserHandler(userService, logger),
		PreferenceHandler:  handler.NewPreferenceHandler(logger),
		ViolationHandler:   handler.NewViolationHandler(violationService, logger),
		IncidentHandler:    handler.NewIncidentHandler(incidentService, logger),
		SessionHandler:     handler.NewSessionHandler(sessionService, logger),
	}
	if cfg.AuthRequired {
		deps.JWTMiddleware = middleware.JWTProtected(cfg.JWTSecret)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, deps)

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
