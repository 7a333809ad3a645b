// Package repositories is the entity store: one collection per entity with
// advisory references between them and no cascades.
package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/models"
)

// Document is implemented by every stored model.
type Document[T any] interface {
	GetID() primitive.ObjectID
	WithID(id primitive.ObjectID) T
}

// Changes holds the fields an update sets, keyed by bson field name.
// Fields not present are left untouched.
type Changes = bson.M

// Collection is the full CRUD surface shared by users, categories and
// products.
type Collection[T Document[T]] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, doc T) (T, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (T, error)
	// FindByIDs returns the documents that exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]T, error)
	// Update with no changes returns the current document.
	Update(ctx context.Context, id primitive.ObjectID, changes Changes) (T, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Collection[models.User]
}

type CategoryRepository interface {
	Collection[models.Category]
}

type ProductRepository interface {
	Collection[models.Product]
}

// OrderRepository is append-only: orders are never updated or deleted.
type OrderRepository interface {
	List(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, order models.Order) (models.Order, error)
	Count(ctx context.Context) (int64, error)
	// SumTotalAmount is 0 when there are no orders.
	SumTotalAmount(ctx context.Context) (float64, error)
}

// Store groups the four collections behind one backend.
type Store struct {
	Users      UserRepository
	Categories CategoryRepository
	Products   ProductRepository
	Orders     OrderRepository

	backend backend
}

type backend interface {
	ping(ctx context.Context) error
	ensureIndexes(ctx context.Context) error
	driver() string
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.backend.ping(ctx) }

// EnsureIndexes creates the indexes the store relies on (unique user email).
// It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error { return s.backend.ensureIndexes(ctx) }

// Driver names the backend: "mongo" or "memory".
func (s *Store) Driver() string { return s.backend.driver() }

const (
	usersCollection      = "users"
	categoriesCollection = "categories"
	productsCollection   = "products"
	ordersCollection     = "orders"
)

// uniqueFields lists the bson fields each collection enforces as unique.
var uniqueFields = map[string][]string{
	usersCollection: {"email"},
}

func duplicateError(field string) error {
	return NewValidationError(field, "The "+field+" has already been taken.")
}
