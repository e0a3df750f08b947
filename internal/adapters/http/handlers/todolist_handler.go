package handlers

import (
	"encoding/json"
	"iter"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-list-service/internal/platform/logging"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// ToDoListHandler handles HTTP requests for to-do lists and their items.
type ToDoListHandler struct {
	service ports.ToDoListService
}

// NewToDoListHandler creates a ToDoListHandler backed by the given service.
func NewToDoListHandler(service ports.ToDoListService) *ToDoListHandler {
	return &ToDoListHandler{service: service}
}

// ListLists handles GET /api/lists.
//
// The first summary is pulled before the status line is written so a store
// failure still produces a 503. The remaining summaries are streamed as they
// arrive; a failure after that point aborts the response.
func (h *ToDoListHandler) ListLists(w http.ResponseWriter, r *http.Request) {
	next, stop := iter.Pull2(h.service.ListToDoLists(r.Context()))
	defer stop()

	summary, err, ok := next()
	if ok && err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte{'['})

	for first := true; ok; first = false {
		if err != nil {
			logging.FromContext(r.Context()).ErrorContext(r.Context(), "aborting list stream",
				slog.Any("error", err),
			)
			panic(http.ErrAbortHandler)
		}

		b, encErr := json.Marshal(dto.ToListSummaryResponse(summary))
		if encErr != nil {
			slog.Error("failed to encode response", slog.Any("error", encErr))
			panic(http.ErrAbortHandler)
		}
		if !first {
			_, _ = w.Write([]byte{','})
		}
		_, _ = w.Write(b)

		summary, err, ok = next()
	}

	_, _ = w.Write([]byte("]\n"))
}

// CreateList handles POST /api/lists.
func (h *ToDoListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.service.CreateToDoList(r.Context(), req.Name)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateListResponse(created))
}

// GetList handles GET /api/lists/{list_id}.
func (h *ToDoListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.GetToDoList(r.Context(), chi.URLParam(r, paramListID))
	h.writeList(w, r, http.StatusOK, list, err)
}

// DeleteList handles DELETE /api/lists/{list_id}.
func (h *ToDoListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteToDoList(r.Context(), chi.URLParam(r, paramListID)); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddItem handles POST /api/lists/{list_id}/items.
func (h *ToDoListHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddItemRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.service.AddItem(r.Context(), chi.URLParam(r, paramListID), req.Label)
	h.writeList(w, r, http.StatusCreated, list, err)
}

// SetItemDone handles PATCH /api/lists/{list_id}/items/{item_id}.
func (h *ToDoListHandler) SetItemDone(w http.ResponseWriter, r *http.Request) {
	var req dto.SetItemDoneRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	list, err := h.service.SetItemDone(r.Context(),
		chi.URLParam(r, paramListID),
		chi.URLParam(r, paramItemID),
		*req.Done,
	)
	h.writeList(w, r, http.StatusOK, list, err)
}

// DeleteItem handles DELETE /api/lists/{list_id}/items/{item_id}.
func (h *ToDoListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.DeleteItem(r.Context(),
		chi.URLParam(r, paramListID),
		chi.URLParam(r, paramItemID),
	)
	h.writeList(w, r, http.StatusOK, list, err)
}

func (h *ToDoListHandler) writeList(w http.ResponseWriter, r *http.Request, status int, list *todolist.ToDoList, err error) {
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, status, dto.ToToDoListResponse(list))
}
