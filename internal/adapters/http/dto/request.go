package dto

import (
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
)

// CreateListRequest is the JSON body of POST /api/lists.
type CreateListRequest struct {
	Name string `json:"name"`
}

// Validate rejects a blank name.
func (r *CreateListRequest) Validate() error {
	return todolist.ValidateName(r.Name)
}

// AddItemRequest is the JSON body of POST /api/lists/{list_id}/items.
type AddItemRequest struct {
	Label string `json:"label"`
}

// Validate rejects a blank label.
func (r *AddItemRequest) Validate() error {
	return todolist.ValidateLabel(r.Label)
}

// SetItemDoneRequest is the JSON body of PATCH /api/lists/{list_id}/items/{item_id}.
// Done is a pointer so an omitted field can be told apart from false.
type SetItemDoneRequest struct {
	Done *bool `json:"done"`
}

// Validate requires the done flag to be present.
func (r *SetItemDoneRequest) Validate() error {
	if r.Done == nil {
		return domain.NewFieldError("done", domain.MsgRequired)
	}
	return nil
}
