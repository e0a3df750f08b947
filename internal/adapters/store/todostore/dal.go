// Package todostore is the MongoDB-backed data access layer for to-do lists.
// It implements [ports.ToDoListStore]: it generates identifiers, translates
// between persisted documents and domain types, and maps every driver
// failure onto the domain error taxonomy.
//
// Each list is one document. Item mutations are single atomic
// findOneAndUpdate calls, so concurrent writers to the same list never lose
// each other's items and no in-process locking is needed.
package todostore

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jsamuelsen11/todo-list-service/internal/domain/todolist"
	"github.com/jsamuelsen11/todo-list-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ToDoListStore = (*DAL)(nil)

// Field names used in filters and updates.
const (
	fieldID       = "_id"
	fieldName     = "name"
	fieldItems    = "items"
	fieldItemID   = "items.id"
	fieldItemDone = "items.$.done"
)

// summaryProjection returns the name and a server-computed item count.
var summaryProjection = bson.D{
	{Key: fieldName, Value: 1},
	{Key: "item_count", Value: bson.D{
		{Key: "$size", Value: bson.D{
			{Key: "$ifNull", Value: bson.A{"$" + fieldItems, bson.A{}}},
		}},
	}},
}

// Executor runs a single store operation. The platform MongoDB client
// implements it to add circuit breaking, rate limiting, tracing and retries.
type Executor interface {
	Do(ctx context.Context, collection, op string, fn func(context.Context) error) error
}

type directExecutor struct{}

func (directExecutor) Do(ctx context.Context, _, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// Option configures a DAL.
type Option func(*DAL)

// WithExecutor routes every store call through exec.
func WithExecutor(exec Executor) Option {
	return func(d *DAL) {
		d.exec = exec
	}
}

// DAL is the data access layer for the to-do list collection.
type DAL struct {
	coll *mongo.Collection
	exec Executor
}

// New creates a DAL over coll. Without WithExecutor, operations call the
// driver directly.
func New(coll *mongo.Collection, opts ...Option) *DAL {
	d := &DAL{
		coll: coll,
		exec: directExecutor{},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// ListToDoLists returns a lazy sequence of list summaries. Nothing is sent
// to the store until the first pull; the cursor is closed when iteration
// stops. Ranging over the returned sequence a second time yields
// ErrSequenceConsumed.
func (d *DAL) ListToDoLists(ctx context.Context) iter.Seq2[todolist.Summary, error] {
	var consumed atomic.Bool

	return func(yield func(todolist.Summary, error) bool) {
		if consumed.Swap(true) {
			yield(todolist.Summary{}, ErrSequenceConsumed)
			return
		}

		var cur *mongo.Cursor
		err := d.exec.Do(ctx, d.coll.Name(), "find", func(ctx context.Context) error {
			var err error
			cur, err = d.coll.Find(ctx, bson.D{}, options.Find().SetProjection(summaryProjection))
			return err
		})
		if err != nil {
			yield(todolist.Summary{}, translateError("listing to-do lists", err))
			return
		}
		defer func() { _ = cur.Close(context.WithoutCancel(ctx)) }()

		for cur.Next(ctx) {
			var doc summaryDocument
			if err := cur.Decode(&doc); err != nil {
				yield(todolist.Summary{}, translateError("decoding to-do list summary", err))
				return
			}
			if !yield(toDomainSummary(&doc), nil) {
				return
			}
		}

		if err := cur.Err(); err != nil {
			yield(todolist.Summary{}, translateError("listing to-do lists", err))
		}
	}
}

// CreateToDoList inserts a new empty list and returns its generated ID.
// A blank name is rejected before anything is written.
func (d *DAL) CreateToDoList(ctx context.Context, name string) (string, error) {
	if err := todolist.ValidateName(name); err != nil {
		return "", err
	}

	doc := newListDocument(todolist.NewID(), name)
	err := d.exec.Do(ctx, d.coll.Name(), "insertOne", func(ctx context.Context) error {
		_, err := d.coll.InsertOne(ctx, doc)
		return err
	})
	if err != nil {
		return "", translateError("creating to-do list", err)
	}

	return doc.ID, nil
}

// GetToDoList fetches a list with all its items.
func (d *DAL) GetToDoList(ctx context.Context, id string) (*todolist.ToDoList, error) {
	if err := todolist.ValidateID("list_id", id); err != nil {
		return nil, err
	}

	var doc listDocument
	err := d.exec.Do(ctx, d.coll.Name(), "findOne", func(ctx context.Context) error {
		return d.coll.FindOne(ctx, bson.D{{Key: fieldID, Value: id}}).Decode(&doc)
	})
	if err != nil {
		return nil, translateError(fmt.Sprintf("getting to-do list %s", id), err)
	}

	return toDomainList(&doc), nil
}

// DeleteToDoList removes a list and its items.
func (d *DAL) DeleteToDoList(ctx context.Context, id string) error {
	if err := todolist.ValidateID("list_id", id); err != nil {
		return err
	}

	var deleted int64
	err := d.exec.Do(ctx, d.coll.Name(), "deleteOne", func(ctx context.Context) error {
		res, err := d.coll.DeleteOne(ctx, bson.D{{Key: fieldID, Value: id}})
		if err != nil {
			return err
		}
		deleted = res.DeletedCount
		return nil
	})
	if err != nil {
		return translateError(fmt.Sprintf("deleting to-do list %s", id), err)
	}
	if deleted == 0 {
		return translateError(fmt.Sprintf("deleting to-do list %s", id), mongo.ErrNoDocuments)
	}

	return nil
}

// AddItem appends a new, not-done item with a generated ID using $push.
func (d *DAL) AddItem(ctx context.Context, listID, label string) (*todolist.ToDoList, error) {
	if err := todolist.ValidateID("list_id", listID); err != nil {
		return nil, err
	}
	if err := todolist.ValidateLabel(label); err != nil {
		return nil, err
	}

	filter := bson.D{{Key: fieldID, Value: listID}}
	update := bson.D{{Key: "$push", Value: bson.D{
		{Key: fieldItems, Value: newItemDocument(todolist.NewID(), label)},
	}}}

	return d.updateList(ctx, fmt.Sprintf("adding item to to-do list %s", listID), filter, update)
}

// SetItemDone sets the done flag of one item. The positional operator
// targets the element matched by the items.id filter.
func (d *DAL) SetItemDone(ctx context.Context, listID, itemID string, done bool) (*todolist.ToDoList, error) {
	if err := validateItemRef(listID, itemID); err != nil {
		return nil, err
	}

	filter := bson.D{{Key: fieldID, Value: listID}, {Key: fieldItemID, Value: itemID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: fieldItemDone, Value: done}}}}

	return d.updateList(ctx, fmt.Sprintf("updating item %s in to-do list %s", itemID, listID), filter, update)
}

// DeleteItem removes one item with $pull. The items.id filter makes a
// missing item report not found instead of silently succeeding.
func (d *DAL) DeleteItem(ctx context.Context, listID, itemID string) (*todolist.ToDoList, error) {
	if err := validateItemRef(listID, itemID); err != nil {
		return nil, err
	}

	filter := bson.D{{Key: fieldID, Value: listID}, {Key: fieldItemID, Value: itemID}}
	update := bson.D{{Key: "$pull", Value: bson.D{
		{Key: fieldItems, Value: bson.D{{Key: "id", Value: itemID}}},
	}}}

	return d.updateList(ctx, fmt.Sprintf("deleting item %s from to-do list %s", itemID, listID), filter, update)
}

// updateList applies update to the single document matching filter and
// returns the list as it is after the update.
func (d *DAL) updateList(ctx context.Context, action string, filter, update bson.D) (*todolist.ToDoList, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc listDocument
	err := d.exec.Do(ctx, d.coll.Name(), "findOneAndUpdate", func(ctx context.Context) error {
		return d.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	})
	if err != nil {
		return nil, translateError(action, err)
	}

	return toDomainList(&doc), nil
}

func validateItemRef(listID, itemID string) error {
	if err := todolist.ValidateID("list_id", listID); err != nil {
		return err
	}
	return todolist.ValidateID("item_id", itemID)
}
