package ports

import (
	"context"
	"iter"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
)

// ToDoListService defines the service port for to-do list operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type ToDoListService interface {
	// ListToDoLists streams summaries of every persisted list. Errors are
	// delivered through the sequence at the point of pull.
	ListToDoLists(ctx context.Context) iter.Seq2[todolist.Summary, error]

	// CreateToDoList creates an empty list and returns it with its
	// server-assigned ID.
	// Returns domain.ErrValidation if the name is blank.
	CreateToDoList(ctx context.Context, name string) (*todolist.ToDoList, error)

	// GetToDoList returns a single list with its items.
	// Returns domain.ErrNotFound if the list does not exist.
	GetToDoList(ctx context.Context, id string) (*todolist.ToDoList, error)

	// DeleteToDoList deletes a list.
	// Returns domain.ErrNotFound if the list does not exist.
	DeleteToDoList(ctx context.Context, id string) error

	// AddItem appends an item to a list and returns the updated list.
	// Returns domain.ErrNotFound if the list does not exist.
	AddItem(ctx context.Context, listID, label string) (*todolist.ToDoList, error)

	// SetItemDone marks an item done or not done and returns the updated list.
	// Returns domain.ErrNotFound if the list or item does not exist.
	SetItemDone(ctx context.Context, listID, itemID string, done bool) (*todolist.ToDoList, error)

	// DeleteItem removes an item from a list and returns the updated list.
	// Returns domain.ErrNotFound if the list or item does not exist.
	DeleteItem(ctx context.Context, listID, itemID string) (*todolist.ToDoList, error)
}
