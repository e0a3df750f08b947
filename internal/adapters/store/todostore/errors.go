package todostore

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

// ErrSequenceConsumed is yielded when a list sequence is ranged over a
// second time. Sequences are forward-only and cannot be restarted.
var ErrSequenceConsumed = errors.New("to-do list sequence already consumed")

// translateError maps a store failure to the domain error taxonomy.
// mongo.ErrNoDocuments becomes domain.ErrNotFound; every other failure,
// including breaker rejections and decode errors, becomes
// domain.ErrUnavailable. Driver errors are never wrapped, so callers
// cannot reach driver types through errors.As.
func translateError(action string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", action, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %s: %w", action, err.Error(), domain.ErrUnavailable)
}
