package bootstrap

import (
	"github.com/ngocduc1504/reservierung-dionysos/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	VenueModule,
	components.UseCaseModule,
	components.HandlerModule,
)
