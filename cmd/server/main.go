package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"medical-report-assistant/internal/agent"
	"medical-report-assistant/internal/config"
	"medical-report-assistant/internal/consultation"
	"medical-report-assistant/internal/directory"
	"medical-report-assistant/internal/platform/logging"
	"medical-report-assistant/internal/report"
	"medical-report-assistant/internal/specialty"
	"medical-report-assistant/internal/upload"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "server",
		Short:        "Medical report and symptom analysis API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(classifyCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <symptoms...>",
		Short: "Print the specialty matched for a symptom description",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := specialty.Classify(strings.Join(args, " "))
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, specialty.Description(name))
			return nil
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 1. Clients
	var model agent.Model
	gemini, err := agent.NewGemini(ctx, agent.GeminiConfig{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
		Timeout: cfg.GeminiTimeout,
	})
	switch {
	case errors.Is(err, agent.ErrNotConfigured):
		log.Warn("GEMINI_API_KEY is not set, AI features are disabled")
	case err != nil:
		log.WithError(err).Error("gemini initialization failed, AI features are disabled")
	default:
		model = gemini
	}

	doctorStore, closeStore := openStore(ctx, cfg)
	defer closeStore()

	// 2. Services
	svc := consultation.NewService(model, directory.NewGateway(doctorStore), report.NewPDFExtractor())
	handler := consultation.NewHandler(svc, cfg.UploadDir, cfg.MaxUploadBytes)

	janitor := upload.NewJanitor(cfg.UploadDir, cfg.TempMaxAge)
	if err := janitor.Start(cfg.TempSweepSchedule); err != nil {
		log.WithError(err).Warn("upload janitor not started")
	} else {
		defer janitor.Stop()
	}

	// 3. Router
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	consultation.RegisterRoutes(r, handler)

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(c.Handler(r), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped")
	return nil
}
