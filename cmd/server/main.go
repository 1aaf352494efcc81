package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daypact/api/internal/config"
	"github.com/daypact/api/internal/database"
	"github.com/daypact/api/internal/handler"
	"github.com/daypact/api/internal/middleware"
	"github.com/daypact/api/internal/repository"
	"github.com/daypact/api/internal/service"
	"github.com/daypact/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service. In development an ephemeral key pair is
	// generated when no key files are configured on disk.
	jwtService, err := newJWTService(cfg)
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	challengeRepo := repository.NewChallengeRepository(db)
	checkinRepo := repository.NewCheckInRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	// Initialize services
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})

	challengeService := service.NewChallengeService(service.ChallengeServiceConfig{
		ChallengeRepo: challengeRepo,
	})

	checkinService := service.NewCheckInService(service.CheckInServiceConfig{
		CheckInRepo:   checkinRepo,
		ChallengeRepo: challengeRepo,
	})

	projectService := service.NewProjectService(service.ProjectServiceConfig{
		ProjectRepo:   projectRepo,
		ChallengeRepo: challengeRepo,
	})

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	authHandler := handler.NewAuthHandler(authService, jwtService.GetExpiration())
	challengeHandler := handler.NewChallengeHandler(challengeService)
	checkinHandler := handler.NewCheckInHandler(checkinService)
	projectHandler := handler.NewProjectHandler(projectService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Auth endpoints (protected)
	authMiddleware := middleware.Auth(authService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Challenge endpoints
	mux.Handle("POST /v1/challenges", authMiddleware(http.HandlerFunc(challengeHandler.Create)))
	mux.HandleFunc("GET /v1/challenges", challengeHandler.List)
	mux.HandleFunc("GET /v1/challenges/{challengeId}", challengeHandler.Get)
	mux.Handle("POST /v1/challenges/{challengeId}/join", authMiddleware(http.HandlerFunc(challengeHandler.Join)))

	// Check-in endpoints
	mux.Handle("POST /v1/checkins", authMiddleware(http.HandlerFunc(checkinHandler.Create)))
	mux.Handle("GET /v1/checkins/me", authMiddleware(http.HandlerFunc(checkinHandler.ListMine)))
	mux.Handle("GET /v1/checkins/challenge/{challengeId}", authMiddleware(http.HandlerFunc(checkinHandler.ListByChallenge)))

	// Project endpoints
	mux.Handle("POST /v1/projects", authMiddleware(http.HandlerFunc(projectHandler.Create)))
	mux.HandleFunc("GET /v1/projects", projectHandler.List)
	mux.Handle("GET /v1/projects/me", authMiddleware(http.HandlerFunc(projectHandler.ListMine)))
	mux.HandleFunc("GET /v1/projects/{projectId}", projectHandler.Get)
	mux.Handle("PATCH /v1/projects/{projectId}", authMiddleware(http.HandlerFunc(projectHandler.Update)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}

// newJWTService loads the signing key pair from disk, falling back to an
// ephemeral in-memory pair when running in development without key files.
func newJWTService(cfg *config.Config) (*jwt.Service, error) {
	if cfg.IsDevelopment() && !fileExists(cfg.JWT.PrivateKeyPath) {
		slog.Warn("JWT key files not found, generating ephemeral key pair",
			slog.String("private_key_path", cfg.JWT.PrivateKeyPath),
		)
		return jwt.NewEphemeralService(cfg.JWT.Issuer, time.Duration(cfg.JWT.ExpirationMins)*time.Minute)
	}
	return jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
