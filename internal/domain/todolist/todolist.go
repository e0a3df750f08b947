// Package todolist holds the to-do list aggregate: a named, ordered sequence
// of items that is always read and written as a single unit.
package todolist

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/todo-list-service/internal/domain"
)

const (
	msgInvalidID = "must be a valid identifier"

	// maxIDLength bounds identifiers accepted from clients. Generated IDs
	// are 36 characters.
	maxIDLength = 64
)

// ToDoList is a named list of items. The item order is the insertion order.
type ToDoList struct {
	ID    string
	Name  string
	Items []Item
}

// Item is a single entry of a ToDoList. It has no lifecycle outside its list.
type Item struct {
	ID    string
	Label string
	Done  bool
}

// Summary is the projection of a ToDoList used for listing many lists
// without transferring item bodies.
type Summary struct {
	ID        string
	Name      string
	ItemCount int
}

// ItemCount returns the number of items currently in the list.
func (l *ToDoList) ItemCount() int {
	return len(l.Items)
}

// Summary projects the list to its Summary.
func (l *ToDoList) Summary() Summary {
	return Summary{
		ID:        l.ID,
		Name:      l.Name,
		ItemCount: l.ItemCount(),
	}
}

// Item returns the item with the given ID and whether it was found.
func (l *ToDoList) Item(id string) (Item, bool) {
	for _, it := range l.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// NewID returns a fresh random identifier for a list or an item. Identifiers
// are opaque to clients and independent of the store's key format.
func NewID() string {
	return uuid.NewString()
}

// ValidateID reports a *domain.ValidationError on field when id cannot be an
// identifier at all: empty, longer than maxIDLength, or containing anything
// other than ASCII letters, digits, '-' and '_'. A well-formed id that was
// never issued is left for the store to report as not found.
func ValidateID(field, id string) error {
	if id == "" || len(id) > maxIDLength {
		return domain.NewFieldError(field, msgInvalidID)
	}
	for i := 0; i < len(id); i++ {
		if !isIDByte(id[i]) {
			return domain.NewFieldError(field, msgInvalidID)
		}
	}
	return nil
}

func isIDByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '-', c == '_':
		return true
	}
	return false
}

// ValidateName checks that a list name is not blank.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domain.NewFieldError("name", domain.MsgRequired)
	}
	return nil
}

// ValidateLabel checks that an item label is not blank.
func ValidateLabel(label string) error {
	if strings.TrimSpace(label) == "" {
		return domain.NewFieldError("label", domain.MsgRequired)
	}
	return nil
}
