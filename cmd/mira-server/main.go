// Package main is the entry point for the MIRA MÓVIL server, the backend
// for the mobile construction-equipment inventory client. All domain
// state is held in memory by the application state controller and is lost
// on shutdown.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prn-tf/mira-movil/internal/config"
	"github.com/prn-tf/mira-movil/internal/controller"
	"github.com/prn-tf/mira-movil/internal/credentials"
	"github.com/prn-tf/mira-movil/internal/handler"
	"github.com/prn-tf/mira-movil/internal/lockout"
	"github.com/prn-tf/mira-movil/internal/metrics"
	"github.com/prn-tf/mira-movil/internal/notify"
	"github.com/prn-tf/mira-movil/internal/report"
	"github.com/prn-tf/mira-movil/internal/repository/memory"
	"github.com/prn-tf/mira-movil/internal/seed"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	setupLogger(cfg.Logging)

	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("git_commit", GitCommit).
		Msg("Starting MIRA MÓVIL Server")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users := memory.NewUserRepository()
	equipment := memory.NewEquipmentRepository()
	movements := memory.NewMovementRepository()

	ledger, closeLedger, err := newLedger(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeLedger()

	verifier := newVerifier(cfg.Auth.CredentialScheme)

	if cfg.Seed.Demo {
		if err := seed.Demo(ctx, users, equipment, movements, verifier, log.Logger); err != nil {
			return fmt.Errorf("load demo fixtures: %w", err)
		}
	}

	m := metrics.New()

	ctrl := controller.New(controller.Config{
		Users:           users,
		Equipment:       equipment,
		Movements:       movements,
		Ledger:          ledger,
		Verifier:        verifier,
		Notifier:        notify.NewLogNotifier(log.Logger),
		Renderer:        report.NewTextRenderer(),
		Artifacts:       report.NewMemoryStore(),
		Metrics:         m,
		Logger:          log.Logger,
		MaxAttempts:     cfg.Auth.MaxAttempts,
		LockoutDuration: cfg.Auth.LockoutDuration,
		Latency:         cfg.Simulation.Latency,
	})
	defer ctrl.Close()

	api := handler.NewAPIHandler(handler.APIConfig{
		Controller: ctrl,
		Logger:     log.Logger,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle(cfg.Metrics.Path, m.Handler())
		metricsSrv = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Metrics.Port),
			Handler: mux,
		}
		go func() {
			log.Info().Str("addr", metricsSrv.Addr).Str("path", cfg.Metrics.Path).Msg("metrics server listening")
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics server: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("metrics server shutdown failed")
		}
	}

	log.Info().Msg("server stopped")
	return nil
}

// newLedger picks the lockout ledger backend. Redis shares the throttle
// across instances; the in-memory ledger suits a single process.
func newLedger(ctx context.Context, cfg config.RedisConfig) (lockout.Ledger, func(), error) {
	if !cfg.Enabled {
		return lockout.NewMemoryLedger(), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().Str("addr", cfg.Addr()).Msg("using redis lockout ledger")
	return lockout.NewRedisLedger(client), func() { client.Close() }, nil
}

func newVerifier(scheme string) credentials.Verifier {
	if scheme == "bcrypt" {
		return credentials.BcryptVerifier{}
	}
	return credentials.LoginNameVerifier{}
}

// setupLogger configures the global logger.
func setupLogger(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
