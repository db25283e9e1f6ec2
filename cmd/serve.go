package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/codescan-io/sonarqube-sub000/config"
	"github.com/codescan-io/sonarqube-sub000/internal/fixtures"
	"github.com/codescan-io/sonarqube-sub000/internal/jobs"
	"github.com/codescan-io/sonarqube-sub000/internal/repository"
	"github.com/codescan-io/sonarqube-sub000/internal/transport/http/middleware"
	handlers_fiber "github.com/codescan-io/sonarqube-sub000/internal/transport/http/server/handlers-fiber"
	"github.com/codescan-io/sonarqube-sub000/internal/usecase"
	"github.com/codescan-io/sonarqube-sub000/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	seed, err := loadSeed(cfg)
	if err != nil {
		return err
	}

	repo, err := repository.New(ctx, cfg.Store.Backend, log, cfg, seed)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "backend", cfg.Store.Backend, "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	timeout := cfg.HTTP.RequestTimeout
	uc := usecase.New(log, ctx, repo, timeout)

	if cfg.Store.ResetCron != "" {
		resets, err := jobs.NewCron(log, cfg.Store.ResetCron, uc, timeout)
		if err != nil {
			return err
		}
		resets.Start()
		defer resets.Stop()
		log.Infow("scheduled resets enabled", "spec", cfg.Store.ResetCron, "next", resets.Next())
	}

	serv := fiber.New(fiber.Config{
		ReadTimeout:           cfg.HTTP.RequestTimeout,
		WriteTimeout:          cfg.HTTP.RequestTimeout,
		DisableStartupMessage: true,
		Immutable:             true,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log, "/healthz"))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	handlers_fiber.NewHandler(log, uc).Register(serv)

	go func() {
		log.Infow("listening", "addr", cfg.ServerAddr(), "backend", cfg.Store.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Warnw("server shutdown", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
	return nil
}

func loadSeed(cfg *config.Config) (fixtures.Snapshot, error) {
	if cfg.Store.FixturesFile == "" {
		return fixtures.Default(), nil
	}
	seed, err := fixtures.LoadFile(cfg.Store.FixturesFile)
	if err != nil {
		return fixtures.Snapshot{}, fmt.Errorf("store.fixtures_file: %w", err)
	}
	return seed, nil
}
