package bootstrap

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
