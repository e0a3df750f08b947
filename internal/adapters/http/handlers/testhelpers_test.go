package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"iter"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
)

const (
	testListID = "3f1c2b9e-8d4a-4c61-9e0b-2a7d5f6e1c30"
	testItemID = "b8a0f4d2-1e3c-4f5a-8b7d-9c6e2a1f0d47"
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validList() *todolist.ToDoList {
	return &todolist.ToDoList{
		ID:   testListID,
		Name: "Groceries",
		Items: []todolist.Item{
			{ID: testItemID, Label: "Milk", Done: false},
		},
	}
}

// summaries returns a sequence yielding each summary, then err if non-nil.
func summaries(err error, items ...todolist.Summary) iter.Seq2[todolist.Summary, error] {
	return func(yield func(todolist.Summary, error) bool) {
		for _, s := range items {
			if !yield(s, nil) {
				return
			}
		}
		if err != nil {
			yield(todolist.Summary{}, err)
		}
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
