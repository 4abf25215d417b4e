package components

import (
	"github.com/ngocduc1504/reservierung-dionysos/internal/handler"
	"github.com/ngocduc1504/reservierung-dionysos/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
	),
	fx.Invoke(handler.NewRouter),
)
