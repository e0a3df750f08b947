package todostore_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/jsamuelsen11/todo-list-service/internal/adapters/store/todostore"
	"github.com/jsamuelsen11/todo-list-service/internal/domain"
	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
)

const (
	listID = "0b9f6a2e-3c1d-4e5f-8a7b-6c5d4e3f2a1b"
	itemA  = "5f0c1e2d-3b4a-4c5d-9e8f-7a6b5c4d3e2f"
	itemB  = "a1b2c3d4-e5f6-4a7b-8c9d-0e1f2a3b4c5d"
)

// countingExecutor records how many operations reached the store.
type countingExecutor struct {
	ops []string
}

func (e *countingExecutor) Do(ctx context.Context, _, op string, fn func(context.Context) error) error {
	e.ops = append(e.ops, op)
	return fn(ctx)
}

func ns(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func listDoc(id, name string, items ...bson.D) bson.D {
	arr := bson.A{}
	for _, it := range items {
		arr = append(arr, it)
	}
	return bson.D{{Key: "_id", Value: id}, {Key: "name", Value: name}, {Key: "items", Value: arr}}
}

func itemDoc(id, label string, done bool) bson.D {
	return bson.D{{Key: "id", Value: id}, {Key: "label", Value: label}, {Key: "done", Value: done}}
}

func commandError() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{
		Code:    11600,
		Name:    "InterruptedAtShutdown",
		Message: "interrupted at shutdown",
	})
}

func TestListToDoLists(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("yields summaries lazily", func(mt *mtest.T) {
		exec := &countingExecutor{}
		dal := todostore.New(mt.Coll, todostore.WithExecutor(exec))

		seq := dal.ListToDoLists(context.Background())
		if len(exec.ops) != 0 {
			t.Fatalf("store called before first pull: %v", exec.ops)
		}

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: listID}, {Key: "name", Value: "Groceries"}, {Key: "item_count", Value: int32(2)}},
			bson.D{{Key: "_id", Value: itemB}, {Key: "name", Value: "Chores"}, {Key: "item_count", Value: int32(0)}},
		))

		var got []todolist.Summary
		for s, err := range seq {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, s)
		}

		want := []todolist.Summary{
			{ID: listID, Name: "Groceries", ItemCount: 2},
			{ID: itemB, Name: "Chores", ItemCount: 0},
		}
		if len(got) != len(want) {
			t.Fatalf("got %d summaries, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("summary[%d] = %+v, want %+v", i, got[i], want[i])
			}
		}
		if len(exec.ops) != 1 || exec.ops[0] != "find" {
			t.Errorf("ops = %v, want [find]", exec.ops)
		}
	})

	mt.Run("projects item count without items", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		for _, err := range dal.ListToDoLists(context.Background()) {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			t.Fatalf("started event = %+v, want find", evt)
		}
		proj, ok := evt.Command.Lookup("projection").DocumentOK()
		if !ok {
			t.Fatal("find command has no projection")
		}
		if _, err := proj.LookupErr("items"); err == nil {
			t.Error("projection includes item bodies")
		}
		if _, err := proj.LookupErr("item_count", "$size"); err != nil {
			t.Errorf("projection item_count is not a $size expression: %v", err)
		}
	})

	mt.Run("empty collection", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		n := 0
		for _, err := range dal.ListToDoLists(context.Background()) {
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			n++
		}
		if n != 0 {
			t.Errorf("yielded %d summaries, want 0", n)
		}
	})

	mt.Run("store failure is yielded as unavailable", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(commandError())

		var errs []error
		for _, err := range dal.ListToDoLists(context.Background()) {
			errs = append(errs, err)
		}
		if len(errs) != 1 {
			t.Fatalf("yielded %d elements, want 1", len(errs))
		}
		if !errors.Is(errs[0], domain.ErrUnavailable) {
			t.Errorf("error = %v, want domain.ErrUnavailable", errs[0])
		}
		var cmdErr mongo.CommandError
		if errors.As(errs[0], &cmdErr) {
			t.Error("driver error leaked through the data access layer")
		}
	})

	mt.Run("second range reports consumed", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: listID}, {Key: "name", Value: "Groceries"}, {Key: "item_count", Value: int32(0)}},
		))

		seq := dal.ListToDoLists(context.Background())
		for range seq {
		}

		var errs []error
		for _, err := range seq {
			errs = append(errs, err)
		}
		if len(errs) != 1 || !errors.Is(errs[0], todostore.ErrSequenceConsumed) {
			t.Errorf("second range = %v, want [ErrSequenceConsumed]", errs)
		}
	})

	mt.Run("early break stops iteration", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: listID}, {Key: "name", Value: "A"}, {Key: "item_count", Value: int32(0)}},
			bson.D{{Key: "_id", Value: itemA}, {Key: "name", Value: "B"}, {Key: "item_count", Value: int32(1)}},
		))

		n := 0
		for range dal.ListToDoLists(context.Background()) {
			n++
			break
		}
		if n != 1 {
			t.Errorf("iterated %d times, want 1", n)
		}
	})
}

func TestCreateToDoList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserts list with empty items", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := dal.CreateToDoList(context.Background(), "Groceries")
		if err != nil {
			t.Fatalf("CreateToDoList() error = %v", err)
		}
		if err := todolist.ValidateID("id", id); err != nil {
			t.Errorf("generated id %q is not a valid identifier", id)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "insert" {
			t.Fatalf("started event = %+v, want insert", evt)
		}
		docs, err := evt.Command.Lookup("documents").Array().Values()
		if err != nil || len(docs) != 1 {
			t.Fatalf("insert documents = %v (err %v), want exactly one", docs, err)
		}
		inserted := docs[0].Document()
		if got := inserted.Lookup("_id").StringValue(); got != id {
			t.Errorf("_id = %q, want %q", got, id)
		}
		if got := inserted.Lookup("name").StringValue(); got != "Groceries" {
			t.Errorf("name = %q, want %q", got, "Groceries")
		}
		items, ok := inserted.Lookup("items").ArrayOK()
		if !ok {
			t.Fatal("items is not an array")
		}
		if vals, _ := items.Values(); len(vals) != 0 {
			t.Errorf("items has %d elements, want 0", len(vals))
		}
	})

	mt.Run("blank name writes nothing", func(mt *mtest.T) {
		exec := &countingExecutor{}
		dal := todostore.New(mt.Coll, todostore.WithExecutor(exec))

		_, err := dal.CreateToDoList(context.Background(), "   ")
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want *domain.ValidationError", err)
		}
		if _, ok := verr.Fields["name"]; !ok {
			t.Errorf("fields = %v, want name", verr.Fields)
		}
		if len(exec.ops) != 0 {
			t.Errorf("ops = %v, want none", exec.ops)
		}
	})

	mt.Run("store failure", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(commandError())

		if _, err := dal.CreateToDoList(context.Background(), "Groceries"); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("error = %v, want domain.ErrUnavailable", err)
		}
	})
}

func TestGetToDoList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			listDoc(listID, "Groceries", itemDoc(itemA, "milk", false), itemDoc(itemB, "eggs", true)),
		))

		got, err := dal.GetToDoList(context.Background(), listID)
		if err != nil {
			t.Fatalf("GetToDoList() error = %v", err)
		}
		if got.ID != listID || got.Name != "Groceries" {
			t.Errorf("list = %+v", got)
		}
		want := []todolist.Item{
			{ID: itemA, Label: "milk", Done: false},
			{ID: itemB, Label: "eggs", Done: true},
		}
		if len(got.Items) != len(want) {
			t.Fatalf("items = %+v, want %+v", got.Items, want)
		}
		for i := range want {
			if got.Items[i] != want[i] {
				t.Errorf("item[%d] = %+v, want %+v", i, got.Items[i], want[i])
			}
		}
		if got.ItemCount() != 2 {
			t.Errorf("ItemCount() = %d, want 2", got.ItemCount())
		}
	})

	mt.Run("null items decode as empty", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: listID}, {Key: "name", Value: "Legacy"}, {Key: "items", Value: nil}},
		))

		got, err := dal.GetToDoList(context.Background(), listID)
		if err != nil {
			t.Fatalf("GetToDoList() error = %v", err)
		}
		if got.Items == nil || len(got.Items) != 0 {
			t.Errorf("items = %#v, want empty non-nil slice", got.Items)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(mt), mtest.FirstBatch))

		if _, err := dal.GetToDoList(context.Background(), listID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want domain.ErrNotFound", err)
		}
	})

	mt.Run("malformed id is rejected before querying", func(mt *mtest.T) {
		exec := &countingExecutor{}
		dal := todostore.New(mt.Coll, todostore.WithExecutor(exec))

		_, err := dal.GetToDoList(context.Background(), "not an id")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("error = %v, want domain.ErrValidation", err)
		}
		if len(exec.ops) != 0 {
			t.Errorf("ops = %v, want none", exec.ops)
		}
	})

	mt.Run("store failure", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(commandError())

		if _, err := dal.GetToDoList(context.Background(), listID); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("error = %v, want domain.ErrUnavailable", err)
		}
	})
}

func TestDeleteToDoList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleted", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}))

		if err := dal.DeleteToDoList(context.Background(), listID); err != nil {
			t.Errorf("DeleteToDoList() error = %v", err)
		}
	})

	mt.Run("nothing deleted", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(0)}))

		if err := dal.DeleteToDoList(context.Background(), listID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want domain.ErrNotFound", err)
		}
	})
}

func TestItemMutations(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	after := listDoc(listID, "Groceries", itemDoc(itemA, "milk", true))

	mt.Run("add item pushes a new item", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key:   "value",
			Value: listDoc(listID, "Groceries", itemDoc(itemA, "milk", false)),
		}))

		got, err := dal.AddItem(context.Background(), listID, "milk")
		if err != nil {
			t.Fatalf("AddItem() error = %v", err)
		}
		if got.ItemCount() != 1 || got.Items[0].Label != "milk" || got.Items[0].Done {
			t.Errorf("list = %+v", got)
		}

		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "findAndModify" {
			t.Fatalf("started event = %+v, want findAndModify", evt)
		}
		pushed, err := evt.Command.LookupErr("update", "$push", "items")
		if err != nil {
			t.Fatalf("update has no $push.items: %v", err)
		}
		item := pushed.Document()
		if got := item.Lookup("label").StringValue(); got != "milk" {
			t.Errorf("pushed label = %q, want %q", got, "milk")
		}
		if item.Lookup("done").Boolean() {
			t.Error("pushed item is done, want not done")
		}
		if err := todolist.ValidateID("id", item.Lookup("id").StringValue()); err != nil {
			t.Error("pushed item has no generated id")
		}
		if !evt.Command.Lookup("new").Boolean() {
			t.Error("findAndModify does not return the updated document")
		}
	})

	mt.Run("add item to missing list", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		if _, err := dal.AddItem(context.Background(), listID, "milk"); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want domain.ErrNotFound", err)
		}
	})

	mt.Run("add item blank label", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)

		_, err := dal.AddItem(context.Background(), listID, "")
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Fields["label"] == "" {
			t.Errorf("error = %v, want validation error on label", err)
		}
	})

	mt.Run("set item done", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: after}))

		got, err := dal.SetItemDone(context.Background(), listID, itemA, true)
		if err != nil {
			t.Fatalf("SetItemDone() error = %v", err)
		}
		if !got.Items[0].Done {
			t.Error("item not marked done")
		}

		evt := mt.GetStartedEvent()
		if _, err := evt.Command.LookupErr("query", "items.id"); err != nil {
			t.Errorf("filter does not match on item id: %v", err)
		}
		if v, err := evt.Command.LookupErr("update", "$set", "items.$.done"); err != nil || !v.Boolean() {
			t.Errorf("update does not set items.$.done: %v", err)
		}
	})

	mt.Run("set item done on missing item", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		if _, err := dal.SetItemDone(context.Background(), listID, itemB, true); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("error = %v, want domain.ErrNotFound", err)
		}
	})

	mt.Run("set item done malformed item id", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)

		_, err := dal.SetItemDone(context.Background(), listID, "x y", true)
		var verr *domain.ValidationError
		if !errors.As(err, &verr) || verr.Fields["item_id"] == "" {
			t.Errorf("error = %v, want validation error on item_id", err)
		}
	})

	mt.Run("delete item pulls it", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: listDoc(listID, "Groceries")}))

		got, err := dal.DeleteItem(context.Background(), listID, itemA)
		if err != nil {
			t.Fatalf("DeleteItem() error = %v", err)
		}
		if got.ItemCount() != 0 {
			t.Errorf("ItemCount() = %d, want 0", got.ItemCount())
		}

		evt := mt.GetStartedEvent()
		if v, err := evt.Command.LookupErr("update", "$pull", "items", "id"); err != nil || v.StringValue() != itemA {
			t.Errorf("update does not pull item %s: %v", itemA, err)
		}
	})

	mt.Run("delete item store failure", func(mt *mtest.T) {
		dal := todostore.New(mt.Coll)
		mt.AddMockResponses(commandError())

		if _, err := dal.DeleteItem(context.Background(), listID, itemA); !errors.Is(err, domain.ErrUnavailable) {
			t.Errorf("error = %v, want domain.ErrUnavailable", err)
		}
	})
}
