package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"vidly/internal/handler/middleware"
	"vidly/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger writes to stdout and, when LOG_FILE is set, appends to that file too.
func NewLogger(lc fx.Lifecycle, cfg config.Config) (*slog.Logger, error) {
	if cfg.Log.File == "" {
		return middleware.NewLogger(cfg.Log, os.Stdout), nil
	}

	file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", cfg.Log.File, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return file.Close()
		},
	})

	return middleware.NewLogger(cfg.Log, io.MultiWriter(os.Stdout, file)), nil
}
