package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vitalscan/vitalscan/internal/config"
	"github.com/vitalscan/vitalscan/internal/domain/assessment"
	"github.com/vitalscan/vitalscan/internal/domain/chat"
	"github.com/vitalscan/vitalscan/internal/domain/identity"
	"github.com/vitalscan/vitalscan/internal/platform/auth"
	"github.com/vitalscan/vitalscan/internal/platform/db"
	"github.com/vitalscan/vitalscan/internal/platform/middleware"
	"github.com/vitalscan/vitalscan/internal/platform/notification"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitalscan-server",
		Short: "VitalScan health assessment API server",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	var migrationsDir string
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	migrateUpCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(migrationsDir, "up")
		},
	}
	migrateStatusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(migrationsDir, "status")
		},
	}
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", "migrations", "migrations directory")
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd)

	rootCmd.AddCommand(serveCmd, migrateCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	if cfg.IsDev() {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// signingKey returns the configured session signing key. In development
// a random ephemeral key is generated when none is configured, which
// invalidates sessions on every restart. Production is rejected earlier
// by config.Validate.
func signingKey(cfg *config.Config, logger zerolog.Logger) []byte {
	if cfg.SessionSigningKey != "" {
		return []byte(cfg.SessionSigningKey)
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		logger.Fatal().Err(err).Msg("generating ephemeral signing key")
	}
	logger.Warn().Msg("SESSION_SIGNING_KEY not set, using ephemeral key; sessions will not survive restarts")
	return []byte(hex.EncodeToString(key))
}

// newMailer picks the outbound email transport. SMTP when a host is
// configured, otherwise codes are written to the log for local work.
func newMailer(cfg *config.Config, logger zerolog.Logger) notification.EmailSender {
	if cfg.SMTPHost != "" {
		return notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	}
	return notification.NewLogSender(logger)
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := newLogger(cfg)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()
	logger.Info().Msg("database connection established")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	tokens := auth.NewTokenManager(signingKey(cfg, logger), "vitalscan", cfg.SessionTTL())

	limiter := middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	})
	apiV1 := e.Group("/api/v1")
	apiV1.Use(limiter)
	protected := e.Group("/api/v1")
	protected.Use(limiter, auth.RequireSession(tokens))

	// Identity: passwordless email login
	templates := notification.NewTemplateEngine()
	identitySvc := identity.NewService(
		identity.NewUserRepoPG(pool),
		identity.NewCodeStore(cfg.OTPTTL()),
		tokens,
		newMailer(cfg, logger),
		templates,
		db.NewTxer(pool),
	)
	identity.NewHandler(identitySvc).RegisterRoutes(apiV1, protected)

	// Risk assessments
	assessmentSvc := assessment.NewService(assessment.NewRepoPG(pool))
	assessment.NewHandler(assessmentSvc).RegisterRoutes(protected)

	// AI health assistant
	chatClient := chat.NewOpenAIClient(cfg.AIAPIURL, cfg.AIAPIKey, cfg.AIModel)
	chatSvc := chat.NewService(chatClient)
	chat.NewHandler(chatSvc).RegisterRoutes(protected)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}

func runMigrate(dir, action string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, 2, 1)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer pool.Close()

	migrator := db.NewMigrator(pool, dir)

	switch action {
	case "up":
		n, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("applied %d migration(s)\n", n)
	case "status":
		statuses, err := migrator.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			state := "pending"
			if s.Applied {
				state = "applied " + s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%04d %-40s %s\n", s.Version, s.Name, state)
		}
	}
	return nil
}
