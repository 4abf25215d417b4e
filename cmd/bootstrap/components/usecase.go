package components

import (
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/reservation"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/clock"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/config"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/commands"
	"github.com/ngocduc1504/reservierung-dionysos/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(loc *time.Location) clock.Clock {
		return clock.NewLocalClock(clock.NewRealClock(), loc)
	},
	fx.Annotate(
		reservation.NewEngineSlotChecker,
		fx.As(new(reservation.SlotChecker)),
	),
	func(clk clock.Clock, slots reservation.SlotChecker, cfg config.Config) *reservation.Services {
		return &reservation.Services{
			Clock:     clk,
			Slots:     slots,
			MaxGuests: cfg.Venue.MaxGuests,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
	),
)
