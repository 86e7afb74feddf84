package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/smartystreets/goconvey/convey"

	"github.com/okian/gaffer/internal/adapters/http/api"
	"github.com/okian/gaffer/internal/adapters/http/swagger"
	app "github.com/okian/gaffer/internal/app"
	"github.com/okian/gaffer/internal/config"
	"github.com/okian/gaffer/pkg/logger"
	"github.com/okian/gaffer/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("GAFFER_ADDR", ":8080")
			_ = os.Setenv("GAFFER_MAX_LIST_LIMIT", "100")
			defer func() {
				_ = os.Unsetenv("GAFFER_ADDR")
				_ = os.Unsetenv("GAFFER_MAX_LIST_LIMIT")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxListLimit, convey.ShouldEqual, 100)
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithScoringWeights(12, 25),
					app.WithDemoSeed(true),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc, 500)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				registry := prometheus.NewRegistry()
				manager := metrics.NewManager(metrics.WithPrometheusRegistry(registry))
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing the system metrics updater", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
			defer cancel()

			convey.Convey("Then it should run until the context expires", func() {
				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When wiring the full HTTP surface", func() {
			if err := logger.Init(); err != nil {
				t.Fatalf("init logger: %v", err)
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			cfg, err := config.Load(ctx)
			convey.So(err, convey.ShouldBeNil)

			svc := app.New(
				app.WithScoringWeights(cfg.LevelWeight, cfg.LoadPenaltyWeight),
				app.WithDemoSeed(cfg.SeedDemoData),
			)
			convey.So(svc.Start(ctx), convey.ShouldBeNil)
			defer svc.Stop()

			convey.Convey("Then all components should work together", func() {
				mux := http.NewServeMux()
				swagger.Register(ctx, mux)
				api.NewServer(svc, svc, cfg.MaxListLimit).Register(ctx, mux)
				convey.So(mux, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When the list limit is invalid", func() {
			_ = os.Setenv("GAFFER_MAX_LIST_LIMIT", "0")
			defer func() { _ = os.Unsetenv("GAFFER_MAX_LIST_LIMIT") }()

			convey.Convey("Then configuration loading should fail", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When service options carry invalid values", func() {
			convey.Convey("Then service creation should fall back to defaults", func() {
				svc := app.New(app.WithScoringWeights(0, -1))
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})
	})
}
