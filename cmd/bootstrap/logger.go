package bootstrap

import (
	"log/slog"

	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/middleware"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
