package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"vidly/cmd/bootstrap"
	"vidly/internal/handler/middleware"
	"vidly/internal/infra/db"
	"vidly/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
)

func init() {
	// Fail closed: never expose debug output on a misconfigured host
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           vidly
// @version         1.0
// @description     Video rental service: genres, movies, customers, rentals and returns.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name x-auth-token
func startServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			gin.EnableJsonDecoderDisallowUnknownFields()
			logger.Info("starting server", "address", server.Addr, "mode", gin.Mode())
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("server failed", "error", err)
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping server")
			return server.Shutdown(ctx)
		},
	})
}

func serve(_ *cli.Context) error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
		fx.NopLogger,
	)

	if err := app.Start(context.Background()); err != nil {
		return cli.Exit("failed to start application: "+err.Error(), 1)
	}

	sig := <-app.Wait()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application", "error", err)
	}

	if sig.ExitCode != 0 {
		return cli.Exit("application stopped with errors", sig.ExitCode)
	}
	return nil
}

func withMigrator(run func(*db.Migrator) error) cli.ActionFunc {
	return func(_ *cli.Context) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		logger := middleware.NewLogger(cfg.Log, os.Stdout)

		mg, err := db.NewMigrator(cfg.DB, logger)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer func() {
			if cerr := mg.Close(); cerr != nil {
				logger.Warn("failed to close migrator", "error", cerr.Error())
			}
		}()

		if err := run(mg); err != nil {
			return cli.Exit(err.Error(), 1)
		}
		return nil
	}
}

func main() {
	app := &cli.App{
		Name:   "vidly",
		Usage:  "video rental service",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP server",
				Action: serve,
			},
			{
				Name:  "migrate",
				Usage: "manage the database schema",
				Subcommands: []*cli.Command{
					{
						Name:   "up",
						Usage:  "apply all pending migrations",
						Action: withMigrator((*db.Migrator).Up),
					},
					{
						Name:   "down",
						Usage:  "roll back the last migration",
						Action: withMigrator((*db.Migrator).Down),
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application exited with error", "error", err)
		os.Exit(1)
	}
}
