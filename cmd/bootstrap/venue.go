package bootstrap

import (
	"log/slog"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/schedule"
	"github.com/ngocduc1504/reservierung-dionysos/internal/domain/slot"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/config"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/errs"

	"go.uber.org/fx"
)

var VenueModule = fx.Module("venue",
	fx.Provide(
		NewVenueLocation,
		NewCalendar,
		NewSlotGenerator,
		NewWindowSelector,
		slot.DefaultInertPolicy,
		slot.NewEngine,
	),
)

func NewVenueLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Venue.Location()
}

// NewCalendar builds the venue calendar. VENUE_HOLIDAYS replaces the built-in list,
// VENUE_EXTRA_HOLIDAYS is merged into whichever list is in effect.
func NewCalendar(cfg config.Config) (*schedule.Calendar, error) {
	weekly := schedule.DefaultWeeklySchedule()
	if err := weekly.Validate(); err != nil {
		return nil, errs.Wrap(err, "weekly schedule")
	}

	holidays := schedule.DefaultHolidays()
	if len(cfg.Venue.Holidays) > 0 {
		parsed, err := schedule.ParseHolidayCalendar(cfg.Venue.Holidays)
		if err != nil {
			return nil, errs.Wrap(err, "VENUE_HOLIDAYS")
		}
		holidays = parsed
	}
	if len(cfg.Venue.ExtraHolidays) > 0 {
		extra, err := schedule.ParseHolidayCalendar(cfg.Venue.ExtraHolidays)
		if err != nil {
			return nil, errs.Wrap(err, "VENUE_EXTRA_HOLIDAYS")
		}
		holidays = holidays.Merge(extra)
	}

	cal, err := schedule.NewCalendar(weekly, holidays, schedule.DefaultHolidayOverride(), schedule.DefaultRuleTable())
	if err != nil {
		return nil, errs.Wrap(err, "calendar")
	}
	slog.Info("venue calendar loaded", "timezone", cfg.Venue.TimeZone, "holidays", holidays.Len())
	return cal, nil
}

func NewSlotGenerator(cfg config.Config, cal *schedule.Calendar, loc *time.Location) *slot.Generator {
	return slot.NewGenerator(cal,
		slot.WithLocation(loc),
		slot.WithLeadTime(cfg.Venue.LeadTime),
	)
}

func NewWindowSelector(cfg config.Config) *slot.Selector {
	return slot.NewSelector(cfg.Venue.WindowSize)
}
