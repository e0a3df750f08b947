// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"

// ListSummaryResponse is one element of the GET /api/lists array.
type ListSummaryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"item_count"`
}

// CreateListResponse is returned by POST /api/lists.
type CreateListResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ToDoListResponse is a full list with its items.
type ToDoListResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Items []ItemResponse `json:"items"`
}

// ItemResponse is a single item within a ToDoListResponse.
type ItemResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// ToListSummaryResponse converts a domain Summary to its response DTO.
func ToListSummaryResponse(s todolist.Summary) ListSummaryResponse {
	return ListSummaryResponse{
		ID:        s.ID,
		Name:      s.Name,
		ItemCount: s.ItemCount,
	}
}

// ToCreateListResponse converts a freshly created list to its response DTO.
func ToCreateListResponse(l *todolist.ToDoList) CreateListResponse {
	return CreateListResponse{
		ID:   l.ID,
		Name: l.Name,
	}
}

// ToToDoListResponse converts a domain list to its response DTO. Items is
// always encoded as an array, never null.
func ToToDoListResponse(l *todolist.ToDoList) ToDoListResponse {
	items := make([]ItemResponse, len(l.Items))
	for i, it := range l.Items {
		items[i] = ItemResponse{
			ID:    it.ID,
			Label: it.Label,
			Done:  it.Done,
		}
	}
	return ToDoListResponse{
		ID:    l.ID,
		Name:  l.Name,
		Items: items,
	}
}
