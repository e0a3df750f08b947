package mongodb

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/config"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/telemetry"
)

func testStoreConfig() *config.StoreConfig {
	return &config.StoreConfig{
		URI:                    "mongodb://127.0.0.1:1",
		Collection:             "todo_lists",
		ConnectTimeout:         200 * time.Millisecond,
		ServerSelectionTimeout: 200 * time.Millisecond,
		Retry: config.RetryConfig{
			MaxAttempts:     3,
			InitialInterval: time.Millisecond,
			MaxInterval:     5 * time.Millisecond,
			Multiplier:      2.0,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   3,
			Timeout:       time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// offlineClient returns a Client whose driver never dials; mongo.Connect
// only starts background monitoring.
func offlineClient(t *testing.T, cfg *config.StoreConfig) *Client {
	t.Helper()

	mc, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.URI))
	if err != nil {
		t.Fatalf("mongo.Connect() error = %v", err)
	}
	t.Cleanup(func() { _ = mc.Disconnect(context.Background()) })

	return newClient(mc, "todo", cfg, nil, testLogger())
}

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		c := newClient(mt.Client, "todo", testStoreConfig(), nil, testLogger())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := c.Ping(context.Background()); err != nil {
			t.Errorf("Ping() error = %v, want nil", err)
		}
	})

	mt.Run("command error", func(mt *mtest.T) {
		c := newClient(mt.Client, "todo", testStoreConfig(), nil, testLogger())
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "command ping requires authentication",
		}))

		if err := c.Ping(context.Background()); err == nil {
			t.Error("Ping() error = nil, want error")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("closed breaker pings", func(mt *mtest.T) {
		c := newClient(mt.Client, "todo", testStoreConfig(), nil, testLogger())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		if err := c.HealthCheck(context.Background()); err != nil {
			t.Errorf("HealthCheck() error = %v, want nil", err)
		}
		if c.Name() != "mongodb" {
			t.Errorf("Name() = %q, want %q", c.Name(), "mongodb")
		}
	})

	mt.Run("open breaker fails without ping", func(mt *mtest.T) {
		cfg := testStoreConfig()
		cfg.CircuitBreaker.MaxFailures = 1
		c := newClient(mt.Client, "todo", cfg, nil, testLogger())

		_ = c.Do(context.Background(), "todo_lists", "insertOne", func(context.Context) error {
			return context.DeadlineExceeded
		})

		err := c.HealthCheck(context.Background())
		if err == nil {
			t.Fatal("HealthCheck() error = nil, want circuit open error")
		}
		if !strings.Contains(err.Error(), "circuit breaker open") {
			t.Errorf("HealthCheck() error = %q, want mention of open breaker", err.Error())
		}
	})
}

func TestConnect_FailsFastWhenUnreachable(t *testing.T) {
	t.Parallel()

	_, err := Connect(context.Background(), testStoreConfig(), nil, testLogger())
	if err == nil {
		t.Fatal("Connect() error = nil, want error for unreachable deployment")
	}
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	mc, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("mongo.Connect() error = %v", err)
	}
	c := newClient(mc, "todo", testStoreConfig(), nil, testLogger())

	if err := c.Close(context.Background()); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := c.Close(context.Background()); err != nil {
		t.Errorf("second Close() error = %v, want nil", err)
	}
}

func TestDatabaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		database string
		uri      string
		want     string
		wantErr  bool
	}{
		{name: "configured name wins", database: "lists", uri: "mongodb://localhost:27017/other", want: "lists"},
		{name: "uri default database", uri: "mongodb://localhost:27017/other", want: "other"},
		{name: "fallback", uri: "mongodb://localhost:27017", want: DefaultDatabase},
		{name: "malformed uri", uri: "mongodb://user:secret@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DatabaseName(&config.StoreConfig{URI: tt.uri, Database: tt.database})
			if tt.wantErr {
				if err == nil {
					t.Fatal("DatabaseName() error = nil, want error")
				}
				if strings.Contains(err.Error(), "secret") {
					t.Errorf("error %q leaks uri credentials", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("DatabaseName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DatabaseName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDo_RetriesReadOperations(t *testing.T) {
	t.Parallel()

	c := offlineClient(t, testStoreConfig())

	var calls atomic.Int32
	err := c.Do(context.Background(), "todo_lists", "find", func(context.Context) error {
		if calls.Add(1) < 3 {
			return topology.ServerSelectionError{Wrapped: errors.New("no reachable servers")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error = %v, want nil after retries", err)
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestDo_DoesNotRetryWrites(t *testing.T) {
	t.Parallel()

	c := offlineClient(t, testStoreConfig())

	var calls atomic.Int32
	err := c.Do(context.Background(), "todo_lists", "findOneAndUpdate", func(context.Context) error {
		calls.Add(1)
		return topology.ServerSelectionError{Wrapped: errors.New("no reachable servers")}
	})
	if err == nil {
		t.Fatal("Do() error = nil, want error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("calls = %d, want 1 (writes are not retried)", got)
	}
}

func TestDo_NoDocumentsDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	cfg := testStoreConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	c := offlineClient(t, cfg)

	for range 3 {
		err := c.Do(context.Background(), "todo_lists", "findOne", func(context.Context) error {
			return mongo.ErrNoDocuments
		})
		if !errors.Is(err, mongo.ErrNoDocuments) {
			t.Fatalf("Do() error = %v, want mongo.ErrNoDocuments", err)
		}
	}

	if state := c.breaker.State(); state != gobreaker.StateClosed {
		t.Errorf("breaker state = %v, want closed", state)
	}
}

func TestDo_CircuitBreakerOpens(t *testing.T) {
	t.Parallel()

	cfg := testStoreConfig()
	cfg.CircuitBreaker.MaxFailures = 1
	c := offlineClient(t, cfg)

	_ = c.Do(context.Background(), "todo_lists", "insertOne", func(context.Context) error {
		return context.DeadlineExceeded
	})

	var called bool
	err := c.Do(context.Background(), "todo_lists", "insertOne", func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("Do() error = %v, want gobreaker.ErrOpenState", err)
	}
	if called {
		t.Error("operation ran while circuit breaker should be open")
	}
}

func TestDo_RateLimiterHonorsContext(t *testing.T) {
	t.Parallel()

	cfg := testStoreConfig()
	cfg.RateLimit = config.RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 1}
	c := offlineClient(t, cfg)

	noop := func(context.Context) error { return nil }
	if err := c.Do(context.Background(), "todo_lists", "findOne", noop); err != nil {
		t.Fatalf("first Do() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := c.Do(ctx, "todo_lists", "findOne", noop); err == nil {
		t.Error("second Do() error = nil, want rate limiter error")
	}
}

func TestDo_RecordsMetrics(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	metrics, err := telemetry.NewMetrics(mp, "test-service")
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	c := offlineClient(t, testStoreConfig())
	c.metrics = metrics

	_ = c.Do(context.Background(), "todo_lists", "findOne", func(context.Context) error {
		return mongo.ErrNoDocuments
	})

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "db.client.operation.total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok || len(sum.DataPoints) != 1 {
				t.Fatalf("unexpected data for %s: %#v", m.Name, m.Data)
			}
			dp := sum.DataPoints[0]
			if dp.Value != 1 {
				t.Errorf("operation total = %d, want 1", dp.Value)
			}
			if v, _ := dp.Attributes.Value(telemetry.AttrResult); v.AsString() != "not_found" {
				t.Errorf("result attribute = %q, want %q", v.AsString(), "not_found")
			}
			found = true
		}
	}
	if !found {
		t.Error("db.client.operation.total was not recorded")
	}
}

func TestPingReply_NotOK(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok zero", func(mt *mtest.T) {
		c := newClient(mt.Client, "todo", testStoreConfig(), nil, testLogger())
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 0}, {Key: "errmsg", Value: "not ready"}})

		if err := c.Ping(context.Background()); err == nil {
			t.Error("Ping() error = nil, want error when ok != 1")
		}
	})
}
