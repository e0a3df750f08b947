// Package mongodb owns the connection to the MongoDB document store and the
// instrumented execution path every store operation goes through.
//
// Operations are executed in this order:
//
//	Circuit Breaker → Rate Limiter → OTEL Span → Retry (reads only) → driver
//
// Construction:
//
//	client, err := mongodb.Connect(ctx, &cfg.Store, metrics, logger)
//	defer client.Close(ctx)
//
// Executing operations:
//
//	err := client.Do(ctx, "todo_lists", "findOne", func(ctx context.Context) error {
//		return coll.FindOne(ctx, filter).Decode(&doc)
//	})
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
)

const (
	// checkerName identifies the store in readiness reports and traces.
	checkerName = "mongodb"

	// DefaultDatabase is used when neither config nor the URI name a database.
	DefaultDatabase = "todo"
)

// ErrPingNotOK is returned when the server answers a ping without ok == 1.
var ErrPingNotOK = errors.New("mongodb: ping did not return ok")

type retryConfig struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

// Client wraps a connected *mongo.Client together with the resilience and
// instrumentation applied to every store operation.
type Client struct {
	client   *mongo.Client
	db       *mongo.Database
	breaker  *gobreaker.CircuitBreaker[struct{}]
	limiter  *rate.Limiter // nil when rate limiting is disabled
	retryCfg retryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// Connect dials MongoDB using the configured URI, verifies the deployment
// with a ping and returns a ready Client. When the ping fails the driver
// client is disconnected before returning the error.
//
// If metrics is nil, metric recording is skipped.
func Connect(ctx context.Context, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) (*Client, error) {
	dbName, err := DatabaseName(cfg)
	if err != nil {
		return nil, err
	}

	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}

	mc, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}

	c := newClient(mc, dbName, cfg, metrics, logger)
	if err := c.Ping(ctx); err != nil {
		_ = mc.Disconnect(ctx)
		return nil, fmt.Errorf("verifying mongodb connection: %w", err)
	}

	logger.InfoContext(ctx, "connected to document store",
		slog.String("database", dbName),
	)

	return c, nil
}

// DatabaseName resolves the database to use: the configured name, then the
// default database in the URI path, then DefaultDatabase.
func DatabaseName(cfg *config.StoreConfig) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}

	cs, err := connstring.ParseAndValidate(cfg.URI)
	if err != nil {
		// The driver error echoes the URI, which may carry credentials.
		return "", errors.New("parsing mongodb uri: malformed connection string")
	}
	if cs.Database != "" {
		return cs.Database, nil
	}

	return DefaultDatabase, nil
}

func newClient(mc *mongo.Client, dbName string, cfg *config.StoreConfig, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        checkerName,
		MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return !isStoreFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	var limiter *rate.Limiter
	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}

	return &Client{
		client:  mc,
		db:      mc.Database(dbName),
		breaker: cb,
		limiter: limiter,
		retryCfg: retryConfig{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Collection returns a handle to the named collection in the resolved database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Database returns the resolved database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Ping runs {ping: 1} against the database and requires ok == 1.
func (c *Client) Ping(ctx context.Context) error {
	var reply struct {
		OK float64 `bson:"ok"`
	}
	if err := c.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Decode(&reply); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}
	if reply.OK != 1 {
		return ErrPingNotOK
	}
	return nil
}

// Close disconnects from the deployment. Only the first call disconnects;
// later calls return the first result.
func (c *Client) Close(ctx context.Context) error {
	c.closeOnce.Do(func() {
		if err := c.client.Disconnect(ctx); err != nil {
			c.closeErr = fmt.Errorf("disconnecting from mongodb: %w", err)
		}
	})
	return c.closeErr
}

// Name returns the health check identifier. Together with HealthCheck it
// lets Client satisfy ports.HealthChecker.
func (c *Client) Name() string {
	return checkerName
}

// HealthCheck reports store availability. An open breaker fails immediately
// without touching the network; otherwise the deployment is pinged.
func (c *Client) HealthCheck(ctx context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed, gobreaker.StateHalfOpen:
		return c.Ping(ctx)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", checkerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", checkerName, state)
	}
}

// Do executes fn through the full pipeline:
// Circuit Breaker → Rate Limiter → OTEL Span → Retry → fn.
//
// Only read operations (see isReadOperation) are retried. Application level
// outcomes such as mongo.ErrNoDocuments or command errors are returned as-is
// and do not count against the circuit breaker.
func (c *Client) Do(ctx context.Context, collection, op string, fn func(context.Context) error) error {
	start := time.Now()

	_, err := c.breaker.Execute(func() (struct{}, error) {
		if err := c.waitForRateLimit(ctx); err != nil {
			return struct{}{}, err
		}

		spanCtx, span := c.startSpan(ctx, collection, op)
		defer span.End()

		runErr := c.doWithRetry(spanCtx, collection, op, fn)
		finishSpan(span, runErr)

		return struct{}{}, runErr
	})

	c.recordMetrics(ctx, collection, op, start, err)

	return err
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *Client) startSpan(ctx context.Context, collection, op string) (context.Context, trace.Span) {
	tracer := otel.GetTracerProvider().Tracer("mongodb")

	return tracer.Start(ctx, fmt.Sprintf("%s %s", op, collection),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("db.system", checkerName),
			attribute.String("db.name", c.db.Name()),
			attribute.String("db.collection", collection),
			attribute.String("db.operation", op),
		),
	)
}

func finishSpan(span trace.Span, err error) {
	if err == nil || errors.Is(err, mongo.ErrNoDocuments) {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// recordMetrics is called outside the breaker so rejections are counted.
func (c *Client) recordMetrics(ctx context.Context, collection, op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	result := "success"
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		result = "circuit_open"
	case errors.Is(err, mongo.ErrNoDocuments):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	attrs := metric.WithAttributes(
		telemetry.AttrDBSystem.String(checkerName),
		telemetry.AttrDBCollection.String(collection),
		telemetry.AttrDBOperation.String(op),
		telemetry.AttrResult.String(result),
	)

	c.metrics.StoreOperationDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	c.metrics.StoreOperationTotal.Add(ctx, 1, attrs)
}

// toUint32 clamps v into the uint32 range. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
