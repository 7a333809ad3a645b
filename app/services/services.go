// Package services holds the application logic between controllers and the
// entity store: payload validation, patch handling and product resolution.
package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/pkg/event"
	"github.com/shashiranjanraj/fooddash/pkg/validate"
)

// Events fired after a successful write. The payload is the stored entity
// (a ProductView for products) or, for deletes, the id hex string.
const (
	UserCreated     = "user.created"
	UserUpdated     = "user.updated"
	UserDeleted     = "user.deleted"
	CategoryCreated = "category.created"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"
	ProductCreated  = "product.created"
	ProductUpdated  = "product.updated"
	ProductDeleted  = "product.deleted"
	OrderCreated    = "order.created"
)

// Services bundles one service per resource over a single Store.
type Services struct {
	Users      *UserService
	Categories *CategoryService
	Catalog    *CatalogService
	Orders     *OrderService
	Dashboard  *DashboardService

	// Events receives every write; listeners run synchronously on the
	// request goroutine.
	Events *event.Bus
}

func New(store *repositories.Store) *Services {
	bus := event.NewBus()

	s := &Services{
		Users:      NewUserService(store.Users),
		Categories: NewCategoryService(store.Categories),
		Catalog:    NewCatalogService(store.Products, store.Categories),
		Orders:     NewOrderService(store.Orders),
		Dashboard:  NewDashboardService(store.Users, store.Products, store.Orders),
		Events:     bus,
	}
	s.Users.events = bus
	s.Categories.events = bus
	s.Catalog.events = bus
	s.Orders.events = bus
	return s
}

// fired passes v and err through, firing name with v when err is nil.
func fired[T any](ctx context.Context, bus *event.Bus, name string, v T, err error) (T, error) {
	if err == nil {
		bus.Fire(ctx, name, v)
	}
	return v, err
}

func firedDelete(ctx context.Context, bus *event.Bus, name string, id primitive.ObjectID, err error) error {
	if err == nil {
		bus.Fire(ctx, name, id.Hex())
	}
	return err
}

func check(input any) error {
	if errs := validate.Struct(input); validate.HasErrors(errs) {
		return &repositories.ValidationError{Errors: errs}
	}
	return nil
}

func setIfPresent[V any](changes repositories.Changes, field string, v *V) {
	if v != nil {
		changes[field] = *v
	}
}
