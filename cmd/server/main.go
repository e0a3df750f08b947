// Package main is the entry point for the to-do list service. It wires all
// dependencies using samber/do v2, verifies the MongoDB connection, starts the
// HTTP server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-list-service/internal/adapters/http"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/todostore"

	"github.com/jsamuelsen11/todo-list-service/internal/app"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/health"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/mongodb"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	storeShutdownTimeout  = 5 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// APP_PROFILE is optional; without it only defaults, base.yaml and the
	// environment apply.
	cfg, err := config.Load(os.Getenv("APP_PROFILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.EffectiveLogLevel(), cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// The store client is resolved first so an unreachable deployment aborts
	// startup before the listener is bound.
	store, err := do.Invoke[*mongodb.Client](injector)
	if err != nil {
		return fmt.Errorf("connecting to store: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), storeShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Error("store shutdown error", slog.Any("error", err))
		}
	}()

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	if err := server.Listen(); err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Drain HTTP requests before the store client is closed by the deferred call.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	<-serverErr

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*mongodb.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout(&cfg.Store))
		defer cancel()
		return mongodb.Connect(ctx, &cfg.Store, metrics, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.ToDoListStore, error) {
		client := do.MustInvoke[*mongodb.Client](i)
		return todostore.New(
			client.Collection(cfg.Store.Collection),
			todostore.WithExecutor(client),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ToDoListService, error) {
		store := do.MustInvoke[ports.ToDoListStore](i)
		return app.NewToDoListService(store, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ToDoListHandler, error) {
		svc := do.MustInvoke[ports.ToDoListService](i)
		return handlers.NewToDoListHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		listH := do.MustInvoke[*handlers.ToDoListHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(listH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// startupTimeout bounds the initial connect and ping. It covers server
// selection plus connect with a floor for unset values.
func startupTimeout(cfg *config.StoreConfig) time.Duration {
	const floor = 10 * time.Second
	d := cfg.ServerSelectionTimeout + cfg.ConnectTimeout
	if d < floor {
		return floor
	}
	return d
}
