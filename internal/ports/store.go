package ports

import (
	"context"
	"iter"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
)

// ToDoListStore defines the data access port for to-do lists.
// Implemented by the document store adapter; called by the application layer.
// It is the sole writer of the list collection. Every returned error matches
// exactly one of domain.ErrValidation, domain.ErrNotFound or
// domain.ErrUnavailable.
type ToDoListStore interface {
	// ListToDoLists returns a lazy, forward-only sequence of list summaries.
	// The query runs on the first pull; store failures are yielded as the
	// error element of a pair rather than returned up front. The sequence
	// can be ranged over only once.
	ListToDoLists(ctx context.Context) iter.Seq2[todolist.Summary, error]

	// CreateToDoList persists a new empty list and returns its generated ID.
	// Returns domain.ErrValidation if name is blank.
	CreateToDoList(ctx context.Context, name string) (string, error)

	// GetToDoList returns the list with all its items.
	// Returns domain.ErrValidation if id is malformed and
	// domain.ErrNotFound if no list matches.
	GetToDoList(ctx context.Context, id string) (*todolist.ToDoList, error)

	// DeleteToDoList removes a list and all its items.
	// Returns domain.ErrNotFound if no list matches.
	DeleteToDoList(ctx context.Context, id string) error

	// AddItem appends a new, not-done item and returns the updated list.
	// Returns domain.ErrNotFound if the list does not exist at write time.
	AddItem(ctx context.Context, listID, label string) (*todolist.ToDoList, error)

	// SetItemDone sets the completion flag of an item and returns the updated
	// list. Setting the current value again is not an error.
	// Returns domain.ErrNotFound if the list or item does not exist at write time.
	SetItemDone(ctx context.Context, listID, itemID string, done bool) (*todolist.ToDoList, error)

	// DeleteItem removes an item and returns the updated list.
	// Returns domain.ErrNotFound if the list or item does not exist at write time.
	DeleteItem(ctx context.Context, listID, itemID string) (*todolist.ToDoList, error)
}
