package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/notetakerhq/meeting-notes-api/pkg/validator"

	"github.com/notetakerhq/meeting-notes-api/internal/adapter/handler"
	"github.com/notetakerhq/meeting-notes-api/internal/adapter/repository"
	"github.com/notetakerhq/meeting-notes-api/internal/infrastructure/cache"
	"github.com/notetakerhq/meeting-notes-api/internal/infrastructure/database"
	"github.com/notetakerhq/meeting-notes-api/internal/infrastructure/storage"
	meetinguse "github.com/notetakerhq/meeting-notes-api/internal/usecase/meeting"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/notify"
	pipelineuse "github.com/notetakerhq/meeting-notes-api/internal/usecase/pipeline"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/report"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/summarize"
	"github.com/notetakerhq/meeting-notes-api/internal/usecase/transcribe"
	pkgai "github.com/notetakerhq/meeting-notes-api/pkg/ai"
	"github.com/notetakerhq/meeting-notes-api/pkg/config"
	"github.com/notetakerhq/meeting-notes-api/pkg/mail"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware. The capture extension posts from arbitrary meeting
	// pages, so the allowed origins come from config.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Disable it and manage schema with sql-migrate.")
		}
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping startup migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize MinIO. The archive is best-effort: a missing object store
	// degrades to pipeline runs without stored audio.
	log.Println("📦 Connecting to MinIO...")
	var (
		audioArchive    pipelineuse.AudioArchive
		recordingSigner meetinguse.RecordingURLSigner
	)
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  MinIO unavailable, audio archival disabled: %v", err)
	} else {
		audioArchive = minioClient
		recordingSigner = minioClient
		log.Println("✅ MinIO connected successfully")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	participantRepo := repository.NewParticipantRepository(db)
	recordingRepo := repository.NewRecordingRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Initialize AI adapters
	log.Println("🤖 Initializing AI components...")
	asmClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)
	groqClient := pkgai.NewGroqClient(&cfg.Groq)
	transcriber := transcribe.NewAdapter(asmClient, cfg.Pipeline.FallbackConfidence, logger)
	summarizer := summarize.NewAdapter(groqClient, logger)

	// Initialize mail and the notification dispatcher
	log.Println("📧 Initializing notification dispatcher...")
	mailer := mail.NewSMTPMailer(&cfg.SMTP)
	dispatcher := notify.NewDispatcher(mailer, notificationRepo, logger)

	// Initialize the aggregate cache
	meetingCache := cache.NewMeetingCache(redisClient, cfg.Pipeline.CacheTTL, logger)

	// Initialize services
	log.Println("🏗️  Initializing services...")
	meetingService := meetinguse.NewService(
		meetingRepo, participantRepo, recordingRepo, transcriptRepo, summaryRepo,
		notificationRepo, meetingCache, recordingSigner, logger,
	)
	pipelineService := pipelineuse.NewService(
		meetingRepo, participantRepo, recordingRepo, transcriptRepo, summaryRepo,
		transcriber, summarizer, dispatcher, audioArchive, meetingCache,
		cfg.Pipeline.PublicBaseURL, logger,
	)
	exporter := report.NewExporter(logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeeting(meetingService, cfg, logger)
	pipelineHandler := handler.NewPipeline(pipelineService, transcriber, logger)
	reportHandler := handler.NewReport(meetingService, exporter, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, pipelineHandler, reportHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
