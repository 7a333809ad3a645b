package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/pkg/metrics"
)

// NewMongoStore builds a Store over db. The caller owns the client and
// disconnects it on shutdown.
func NewMongoStore(db *mongo.Database) *Store {
	orders := &mongoOrders{newMongoCollection[models.Order](db, ordersCollection, "Order")}

	return &Store{
		Users:      newMongoCollection[models.User](db, usersCollection, "User"),
		Categories: newMongoCollection[models.Category](db, categoriesCollection, "Category"),
		Products:   newMongoCollection[models.Product](db, productsCollection, "Product"),
		Orders:     orders,
		backend:    &mongoBackend{db: db},
	}
}

type mongoBackend struct {
	db *mongo.Database
}

func (b *mongoBackend) driver() string { return "mongo" }

func (b *mongoBackend) ping(ctx context.Context) error {
	return b.db.Client().Ping(ctx, nil)
}

func (b *mongoBackend) ensureIndexes(ctx context.Context) error {
	for collection, fields := range uniqueFields {
		for _, field := range fields {
			_, err := b.db.Collection(collection).Indexes().CreateOne(ctx, mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true).SetName(field + "_unique"),
			})
			if err != nil {
				return fmt.Errorf("%s: create %s index: %w", collection, field, err)
			}
		}
	}
	return nil
}

// mongoCollection implements Collection[T] over one MongoDB collection.
type mongoCollection[T Document[T]] struct {
	col    *mongo.Collection
	name   string
	entity string
}

func newMongoCollection[T Document[T]](db *mongo.Database, name, entity string) *mongoCollection[T] {
	return &mongoCollection[T]{col: db.Collection(name), name: name, entity: entity}
}

// observe records timing; not-found and validation failures are expected
// outcomes and are not counted as store errors.
func (c *mongoCollection[T]) observe(op string, start time.Time, err *error) {
	var unexpected error
	if *err != nil && !errors.Is(*err, ErrNotFound) && !IsValidation(*err) {
		unexpected = *err
	}
	metrics.ObserveStore(c.name, op, start, unexpected)
}

func (c *mongoCollection[T]) List(ctx context.Context) (out []T, err error) {
	defer c.observe("list", time.Now(), &err)

	cur, err := c.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", c.name, err)
	}

	out = make([]T, 0)
	if err = cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", c.name, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func (c *mongoCollection[T]) Create(ctx context.Context, doc T) (_ T, err error) {
	defer c.observe("create", time.Now(), &err)

	doc = doc.WithID(primitive.NewObjectID())
	if _, err = c.col.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, c.writeError("insert", err)
	}
	return doc, nil
}

func (c *mongoCollection[T]) FindByID(ctx context.Context, id primitive.ObjectID) (doc T, err error) {
	defer c.observe("find", time.Now(), &err)

	err = c.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, notFound(c.entity)
	}
	if err != nil {
		return doc, fmt.Errorf("%s: find %s: %w", c.name, id.Hex(), err)
	}
	return doc, nil
}

func (c *mongoCollection[T]) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (out []T, err error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	defer c.observe("find_many", time.Now(), &err)

	cur, err := c.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("%s: find many: %w", c.name, err)
	}

	out = make([]T, 0, len(ids))
	if err = cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", c.name, err)
	}
	return out, nil
}

func (c *mongoCollection[T]) Update(ctx context.Context, id primitive.ObjectID, changes Changes) (doc T, err error) {
	if len(changes) == 0 {
		return c.FindByID(ctx, id)
	}
	defer c.observe("update", time.Now(), &err)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = c.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": changes}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, notFound(c.entity)
	}
	if err != nil {
		return doc, c.writeError("update", err)
	}
	return doc, nil
}

func (c *mongoCollection[T]) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	defer c.observe("delete", time.Now(), &err)

	res, err := c.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("%s: delete %s: %w", c.name, id.Hex(), err)
	}
	if res.DeletedCount == 0 {
		return notFound(c.entity)
	}
	return nil
}

func (c *mongoCollection[T]) Count(ctx context.Context) (n int64, err error) {
	defer c.observe("count", time.Now(), &err)

	n, err = c.col.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w", c.name, err)
	}
	return n, nil
}

func (c *mongoCollection[T]) writeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		if fields := uniqueFields[c.name]; len(fields) > 0 {
			return duplicateError(fields[0])
		}
		return NewValidationError("_id", "The document already exists.")
	}
	return fmt.Errorf("%s: %s: %w", c.name, op, err)
}

type mongoOrders struct {
	*mongoCollection[models.Order]
}

func (o *mongoOrders) SumTotalAmount(ctx context.Context) (total float64, err error) {
	defer o.observe("sum_total", time.Now(), &err)

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$totalAmount"}}},
		}}},
	}

	cur, err := o.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("%s: aggregate: %w", o.name, err)
	}

	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err = cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("%s: decode aggregate: %w", o.name, err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
