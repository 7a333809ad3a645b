package repositories

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/models"
)

// NewMemoryStore returns a Store kept entirely in process memory. Documents
// are round-tripped through bson so updates behave like a Mongo $set.
func NewMemoryStore() *Store {
	return &Store{
		Users:      newMemCollection[models.User](usersCollection, "User"),
		Categories: newMemCollection[models.Category](categoriesCollection, "Category"),
		Products:   newMemCollection[models.Product](productsCollection, "Product"),
		Orders:     &memOrders{newMemCollection[models.Order](ordersCollection, "Order")},
		backend:    memBackend{},
	}
}

type memBackend struct{}

func (memBackend) driver() string { return "memory" }

func (memBackend) ping(context.Context) error { return nil }

func (memBackend) ensureIndexes(context.Context) error { return nil }

// memCollection keeps documents in insertion order.
type memCollection[T Document[T]] struct {
	mu     sync.RWMutex
	name   string
	entity string
	unique []string
	order  []primitive.ObjectID
	docs   map[primitive.ObjectID]T
}

func newMemCollection[T Document[T]](name, entity string) *memCollection[T] {
	return &memCollection[T]{
		name:   name,
		entity: entity,
		unique: uniqueFields[name],
		docs:   make(map[primitive.ObjectID]T),
	}
}

func (c *memCollection[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.docs[id])
	}
	return out, nil
}

func (c *memCollection[T]) Create(ctx context.Context, doc T) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	doc = doc.WithID(primitive.NewObjectID())
	if err := c.checkUnique(doc); err != nil {
		var zero T
		return zero, err
	}

	c.docs[doc.GetID()] = doc
	c.order = append(c.order, doc.GetID())
	return doc, nil
}

func (c *memCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	doc, ok := c.docs[id]
	if !ok {
		return doc, notFound(c.entity)
	}
	return doc, nil
}

func (c *memCollection[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(ids))
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if doc, ok := c.docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (c *memCollection[T]) Update(ctx context.Context, id primitive.ObjectID, changes Changes) (T, error) {
	if err := ctx.Err(); err != nil {
		var zero T
		return zero, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.docs[id]
	if !ok {
		return current, notFound(c.entity)
	}
	if len(changes) == 0 {
		return current, nil
	}

	updated, err := applyChanges(current, changes)
	if err != nil {
		return current, fmt.Errorf("%s: update %s: %w", c.name, id.Hex(), err)
	}
	if err := c.checkUnique(updated); err != nil {
		return current, err
	}

	c.docs[id] = updated
	return updated, nil
}

func (c *memCollection[T]) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.docs[id]; !ok {
		return notFound(c.entity)
	}
	delete(c.docs, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

func (c *memCollection[T]) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return int64(len(c.docs)), nil
}

// checkUnique must be called with c.mu held.
func (c *memCollection[T]) checkUnique(doc T) error {
	if len(c.unique) == 0 {
		return nil
	}
	candidate, err := toM(doc)
	if err != nil {
		return err
	}
	for _, other := range c.docs {
		if other.GetID() == doc.GetID() {
			continue
		}
		existing, err := toM(other)
		if err != nil {
			return err
		}
		for _, field := range c.unique {
			if reflect.DeepEqual(candidate[field], existing[field]) {
				return duplicateError(field)
			}
		}
	}
	return nil
}

func toM(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// applyChanges merges changes into doc the way $set would.
func applyChanges[T any](doc T, changes Changes) (T, error) {
	var out T
	m, err := toM(doc)
	if err != nil {
		return out, err
	}
	for k, v := range changes {
		m[k] = v
	}
	raw, err := bson.Marshal(m)
	if err != nil {
		return out, err
	}
	err = bson.Unmarshal(raw, &out)
	return out, err
}

type memOrders struct {
	*memCollection[models.Order]
}

func (o *memOrders) SumTotalAmount(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	o.mu.RLock()
	defer o.mu.RUnlock()

	var total float64
	for _, order := range o.docs {
		total += order.TotalAmount
	}
	return total, nil
}
