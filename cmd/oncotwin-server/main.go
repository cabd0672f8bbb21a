package main

import (
	"context"
	crypto_rand "crypto/rand"
	"encoding/hex"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/oncotwin/oncotwin/internal/config"
	"github.com/oncotwin/oncotwin/internal/domain/notification"
	"github.com/oncotwin/oncotwin/internal/domain/patient"
	"github.com/oncotwin/oncotwin/internal/domain/reference"
	"github.com/oncotwin/oncotwin/internal/domain/simulation"
	"github.com/oncotwin/oncotwin/internal/platform/auth"
	"github.com/oncotwin/oncotwin/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "oncotwin-server",
		Short: "OncoTwin digital twin API server",
	}

	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the OncoTwin API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	sessionSecret := cfg.SessionSecret
	if sessionSecret == "" {
		// Dev convenience: sessions reset with every restart.
		buf := make([]byte, 32)
		if _, err := crypto_rand.Read(buf); err != nil {
			logger.Fatal().Err(err).Msg("failed to generate session secret")
		}
		sessionSecret = hex.EncodeToString(buf)
		logger.Warn().Msg("SESSION_SECRET not set; using a random per-process secret")
	}
	sessions := auth.NewSessionManager([]byte(sessionSecret), time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	// In-memory store seeded with the demo cohort
	ctx := context.Background()
	repo := patient.NewMemoryRepo()
	if err := patient.Seed(ctx, repo); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed patient store")
	}
	notifLog := notification.NewSeededLog()
	patientSvc := patient.NewService(repo, notifLog)

	gen := simulation.NewMockGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
	simSvc := simulation.NewService(patientSvc, gen, time.Duration(cfg.SimulationProgressMS)*time.Millisecond)
	logger.Info().Int("patients", repo.Len()).Msg("patient store seeded")

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Login/logout stay outside the session guard.
	public := e.Group("/api/v1")
	auth.NewHandler(sessions).RegisterRoutes(public)

	// Everything else requires a live session.
	apiV1 := e.Group("/api/v1", auth.RequireSession(sessions))
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	simulation.NewHandler(simSvc).RegisterRoutes(apiV1)
	notification.NewHandler(notifLog).RegisterRoutes(apiV1)
	reference.NewHandler().RegisterRoutes(apiV1)

	// Start server with graceful shutdown
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

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}
