// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"iter"
	"log/slog"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time check that ToDoListService implements ports.ToDoListService.
var _ ports.ToDoListService = (*ToDoListService)(nil)

// ToDoListService implements ports.ToDoListService on top of the
// ToDoListStore port. It validates input before the store is touched and
// logs failures; the store owns identifiers and persistence.
type ToDoListService struct {
	store  ports.ToDoListStore
	logger *slog.Logger
}

// NewToDoListService creates a ToDoListService. A nil logger discards output.
func NewToDoListService(store ports.ToDoListStore, logger *slog.Logger) *ToDoListService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ToDoListService{
		store:  store,
		logger: logger,
	}
}

// ListToDoLists streams list summaries from the store. A failure is logged
// once at the point it is pulled and passed through unchanged.
func (s *ToDoListService) ListToDoLists(ctx context.Context) iter.Seq2[todolist.Summary, error] {
	s.logger.InfoContext(ctx, "listing to-do lists")

	seq := s.store.ListToDoLists(ctx)
	return func(yield func(todolist.Summary, error) bool) {
		for summary, err := range seq {
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to list to-do lists",
					slog.String("operation", "ListToDoLists"),
					slog.Any("error", err),
				)
			}
			if !yield(summary, err) {
				return
			}
		}
	}
}

// CreateToDoList creates an empty list and returns it with its new ID.
func (s *ToDoListService) CreateToDoList(ctx context.Context, name string) (*todolist.ToDoList, error) {
	s.logger.InfoContext(ctx, "creating to-do list", slog.String("name", name))

	if err := todolist.ValidateName(name); err != nil {
		return nil, err
	}

	id, err := s.store.CreateToDoList(ctx, name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create to-do list",
			slog.String("operation", "CreateToDoList"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return &todolist.ToDoList{
		ID:    id,
		Name:  name,
		Items: []todolist.Item{},
	}, nil
}

// GetToDoList returns a list with its items.
func (s *ToDoListService) GetToDoList(ctx context.Context, id string) (*todolist.ToDoList, error) {
	s.logger.InfoContext(ctx, "fetching to-do list", slog.String("list_id", id))

	if err := todolist.ValidateID("list_id", id); err != nil {
		return nil, err
	}

	list, err := s.store.GetToDoList(ctx, id)
	if err != nil {
		s.logFailure(ctx, "GetToDoList", err, slog.String("list_id", id))
		return nil, err
	}

	return list, nil
}

// DeleteToDoList removes a list and its items.
func (s *ToDoListService) DeleteToDoList(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting to-do list", slog.String("list_id", id))

	if err := todolist.ValidateID("list_id", id); err != nil {
		return err
	}

	if err := s.store.DeleteToDoList(ctx, id); err != nil {
		s.logFailure(ctx, "DeleteToDoList", err, slog.String("list_id", id))
		return err
	}

	return nil
}

// AddItem appends a not-done item to a list.
func (s *ToDoListService) AddItem(ctx context.Context, listID, label string) (*todolist.ToDoList, error) {
	s.logger.InfoContext(ctx, "adding item", slog.String("list_id", listID))

	if err := todolist.ValidateID("list_id", listID); err != nil {
		return nil, err
	}
	if err := todolist.ValidateLabel(label); err != nil {
		return nil, err
	}

	list, err := s.store.AddItem(ctx, listID, label)
	if err != nil {
		s.logFailure(ctx, "AddItem", err, slog.String("list_id", listID))
		return nil, err
	}

	return list, nil
}

// SetItemDone marks an item done or not done.
func (s *ToDoListService) SetItemDone(ctx context.Context, listID, itemID string, done bool) (*todolist.ToDoList, error) {
	s.logger.InfoContext(ctx, "updating item",
		slog.String("list_id", listID),
		slog.String("item_id", itemID),
		slog.Bool("done", done),
	)

	if err := validateItemRef(listID, itemID); err != nil {
		return nil, err
	}

	list, err := s.store.SetItemDone(ctx, listID, itemID, done)
	if err != nil {
		s.logFailure(ctx, "SetItemDone", err,
			slog.String("list_id", listID),
			slog.String("item_id", itemID),
		)
		return nil, err
	}

	return list, nil
}

// DeleteItem removes an item from a list.
func (s *ToDoListService) DeleteItem(ctx context.Context, listID, itemID string) (*todolist.ToDoList, error) {
	s.logger.InfoContext(ctx, "deleting item",
		slog.String("list_id", listID),
		slog.String("item_id", itemID),
	)

	if err := validateItemRef(listID, itemID); err != nil {
		return nil, err
	}

	list, err := s.store.DeleteItem(ctx, listID, itemID)
	if err != nil {
		s.logFailure(ctx, "DeleteItem", err,
			slog.String("list_id", listID),
			slog.String("item_id", itemID),
		)
		return nil, err
	}

	return list, nil
}

// logFailure logs not-found outcomes at warn and everything else at error.
func (s *ToDoListService) logFailure(ctx context.Context, op string, err error, attrs ...slog.Attr) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) {
		level = slog.LevelWarn
	}
	attrs = append([]slog.Attr{slog.String("operation", op)}, attrs...)
	attrs = append(attrs, slog.Any("error", err))
	s.logger.LogAttrs(ctx, level, "to-do list operation failed", attrs...)
}

func validateItemRef(listID, itemID string) error {
	if err := todolist.ValidateID("list_id", listID); err != nil {
		return err
	}
	return todolist.ValidateID("item_id", itemID)
}
