package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"mockmate/interview/internal/config"
	"mockmate/interview/internal/handlers"
	"mockmate/interview/internal/interview"
	"mockmate/interview/internal/jobs"
	"mockmate/interview/internal/metrics"
	"mockmate/interview/internal/oracle"
	_ "mockmate/interview/internal/oracle/gemini"
	"mockmate/interview/internal/prompts"
	"mockmate/interview/internal/routers"
	"mockmate/interview/internal/store"
	"mockmate/interview/internal/transcripts"
)

func registerRoutes(router *chi.Mux, interviewHandler *handlers.InterviewHandler, healthHandler *handlers.HealthHandler) {
	routers.HealthRoutes(router, healthHandler)
	routers.InterviewRoutes(router, interviewHandler)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// newSessionStore picks the session store backend from configuration.
func newSessionStore(cfg *config.Config, logger *zap.Logger) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		logger.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
		return store.NewRedisStore(client, cfg.SessionTTL), nil
	default:
		logger.Info("using in-memory session store")
		return store.NewMemoryStore(), nil
	}
}

// initDatabase opens the PostgreSQL connection used for transcript
// archival
func initDatabase() (*gorm.DB, error) {
	host := getEnv("POSTGRES_HOST", "localhost")
	user := getEnv("POSTGRES_USER", "postgres")
	password := getEnv("POSTGRES_PASSWORD", "postgres")
	dbname := getEnv("POSTGRES_DB", "postgres")
	port := getEnv("POSTGRES_PORT", "5432")
	sslmode := getEnv("POSTGRES_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("store", cfg.StoreBackend),
		zap.Int("slots", len(cfg.SlotTypes)))

	promptManager, err := prompts.NewPromptManager()
	if err != nil {
		logger.Fatal("Failed to initialize prompt manager", zap.Error(err))
	}

	provider, err := oracle.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize oracle provider", zap.Error(err))
	}

	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize session store", zap.Error(err))
	}

	plan := interview.Plan{
		SlotTypes:        cfg.SlotTypes,
		SlotDifficulties: cfg.SlotDifficulties,
		MaxFollowUps:     cfg.MaxFollowUps,
	}
	engine := interview.NewEngine(provider, sessions, plan, logger)

	// Transcript archival is best-effort: without a database the service
	// still runs, completed sessions just stay in the hot store until the
	// retention sweep drops them.
	var recorder *transcripts.Recorder
	db, err := initDatabase()
	if err != nil {
		logger.Error("Failed to initialize database, transcript archival disabled", zap.Error(err))
	} else {
		recorder = transcripts.NewRecorder(db)
		if err := recorder.Migrate(); err != nil {
			logger.Error("Failed to migrate transcript schema, archival disabled", zap.Error(err))
			recorder = nil
		} else {
			engine.SetRecorder(recorder)
			logger.Info("Transcript archival enabled")
		}
	}

	retentionJob := jobs.NewRetentionJob(sessions, &jobs.RetentionConfig{
		Schedule: cfg.RetentionSchedule,
		MaxAge:   cfg.RetentionAge,
		Enabled:  getEnv("RETENTION_ENABLED", "true") == "true",
	}, logger)
	if recorder != nil {
		retentionJob.SetRecorder(recorder)
	}
	if err := retentionJob.Start(); err != nil {
		logger.Error("Failed to start retention sweep", zap.Error(err))
	}

	interviewHandler := handlers.NewInterviewHandler(engine, logger)
	healthHandler := handlers.NewHealthHandler(provider, promptManager, sessions, cfg)

	router := chi.NewRouter()

	// cors middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware("interview"))

	registerRoutes(router, interviewHandler, healthHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port

	// http server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starting server in a goroutine
	go func() {
		logger.Info("Interview service starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("Interview service shutting down...")

	retentionJob.Stop()

	// graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("Interview service exited")
}
