package mongodb

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// readOperations are safe to repeat. Writes are never retried here so a
// $push can never be applied twice.
var readOperations = map[string]bool{
	"find":           true,
	"findOne":        true,
	"countDocuments": true,
	"ping":           true,
}

func isReadOperation(op string) bool {
	return readOperations[op]
}

// doWithRetry runs fn, repeating read operations that fail with a transient
// store error using exponential backoff and ±25% jitter.
func (c *Client) doWithRetry(ctx context.Context, collection, op string, fn func(context.Context) error) error {
	if c.retryCfg.maxAttempts <= 0 {
		return fmt.Errorf("mongodb: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}

	attempts := 1
	if isReadOperation(op) {
		attempts = c.retryCfg.maxAttempts
	}

	var lastErr error
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.waitForRetry(ctx, collection, op, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

func (c *Client) waitForRetry(ctx context.Context, collection, op string, attempt int, lastErr error) error {
	delay := backoff(attempt, c.retryCfg)

	logger := logging.FromContext(ctx)
	logger.WarnContext(ctx, "retrying store operation",
		slog.String("operation", "mongodb.Do"),
		slog.String("db_operation", op),
		slog.String("collection", collection),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// backoff returns the delay before retry number attempt (1-indexed).
func backoff(attempt int, cfg retryConfig) time.Duration {
	delay := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))

	if delay > float64(cfg.maxInterval) {
		delay = float64(cfg.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed operation may succeed if repeated.
// Context errors are final; network and server selection errors are not.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if mongo.IsNetworkError(err) {
		return true
	}
	var sse topology.ServerSelectionError
	return errors.As(err, &sse)
}

// isStoreFailure reports whether err indicates the store itself is
// unhealthy. Caller cancellation and application outcomes such as
// ErrNoDocuments, duplicate keys or command errors do not.
func isStoreFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled):
		return false
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, mongo.ErrClientDisconnected),
		mongo.IsNetworkError(err),
		mongo.IsTimeout(err):
		return true
	}
	var sse topology.ServerSelectionError
	return errors.As(err, &sse)
}
