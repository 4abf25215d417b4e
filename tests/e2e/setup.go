//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/ngocduc1504/reservierung-dionysos/cmd/bootstrap"
	"github.com/ngocduc1504/reservierung-dionysos/cmd/bootstrap/components"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/clock"
	"github.com/ngocduc1504/reservierung-dionysos/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// StartOfSuite is the frozen venue-local wall clock every suite starts from: Thursday noon.
var StartOfSuite = time.Date(2030, 1, 3, 12, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// Build the full application graph with a controllable clock
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, clk *clock.MockClock) (*gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	router, cfg, app := buildE2EApp(clk)
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return router, cfg
}

// Returns router, config, and fx.App for proper lifecycle management
func buildE2EApp(clk *clock.MockClock) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(config.NewTestConfig),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.VenueModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

// ------------------------------------------------------------
// Shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Config config.Config
	Clock  *clock.MockClock
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	s.Clock = clock.NewMockClock(StartOfSuite)
	router, cfg := setupE2EEnvironment(t, s.Clock)
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Clock.Set(StartOfSuite)
}
