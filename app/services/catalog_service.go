package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/pkg/collection"
	"github.com/shashiranjanraj/fooddash/pkg/event"
)

// CatalogService manages products and embeds each product's category on
// the way out. Categories are looked up on every call, never cached.
type CatalogService struct {
	products   repositories.ProductRepository
	categories repositories.CategoryRepository
	events     *event.Bus
}

func NewCatalogService(products repositories.ProductRepository, categories repositories.CategoryRepository) *CatalogService {
	return &CatalogService{products: products, categories: categories}
}

// List resolves every product's category with a single batched lookup.
func (s *CatalogService) List(ctx context.Context) ([]models.ProductView, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := collection.Unique(collection.Map(products, func(p models.Product) primitive.ObjectID {
		return p.CategoryID
	}))
	categories, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve categories: %w", err)
	}
	byID := collection.KeyBy(categories, func(c models.Category) primitive.ObjectID { return c.ID })

	return collection.Map(products, func(p models.Product) models.ProductView {
		var ref *models.CategoryRef
		if c, ok := byID[p.CategoryID]; ok {
			ref = categoryRef(c)
		}
		return view(p, ref)
	}), nil
}

// Resolve embeds the current state of p's category; a missing category
// yields a nil Category rather than an error.
func (s *CatalogService) Resolve(ctx context.Context, p models.Product) (models.ProductView, error) {
	c, err := s.categories.FindByID(ctx, p.CategoryID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return view(p, nil), nil
	case err != nil:
		return models.ProductView{}, fmt.Errorf("resolve category: %w", err)
	}
	return view(p, categoryRef(c)), nil
}

func (s *CatalogService) Create(ctx context.Context, in models.ProductInput) (models.ProductView, error) {
	if err := check(in); err != nil {
		return models.ProductView{}, err
	}

	categoryID, err := primitive.ObjectIDFromHex(in.CategoryID)
	if err != nil {
		return models.ProductView{}, repositories.NewValidationError("categoryId", "The categoryId must be a valid id.")
	}

	status := in.Status
	if status == "" {
		status = models.StatusActive
	}

	created, err := s.products.Create(ctx, models.Product{
		Name:       in.Name,
		CategoryID: categoryID,
		Price:      *in.Price,
		Status:     status,
	})
	if err != nil {
		return models.ProductView{}, err
	}
	v, err := s.reload(ctx, created.ID)
	return fired(ctx, s.events, ProductCreated, v, err)
}

func (s *CatalogService) Update(ctx context.Context, id string, in models.ProductPatch) (models.ProductView, error) {
	oid, err := repositories.ParseID("Product", id)
	if err != nil {
		return models.ProductView{}, err
	}
	if err := check(in); err != nil {
		return models.ProductView{}, err
	}

	changes := repositories.Changes{}
	setIfPresent(changes, "name", in.Name)
	setIfPresent(changes, "price", in.Price)
	setIfPresent(changes, "status", in.Status)
	if in.CategoryID != nil {
		categoryID, err := primitive.ObjectIDFromHex(*in.CategoryID)
		if err != nil {
			return models.ProductView{}, repositories.NewValidationError("categoryId", "The categoryId must be a valid id.")
		}
		changes["categoryId"] = categoryID
	}

	if _, err := s.products.Update(ctx, oid, changes); err != nil {
		return models.ProductView{}, err
	}
	v, err := s.reload(ctx, oid)
	return fired(ctx, s.events, ProductUpdated, v, err)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	oid, err := repositories.ParseID("Product", id)
	if err != nil {
		return err
	}
	return firedDelete(ctx, s.events, ProductDeleted, oid, s.products.Delete(ctx, oid))
}

// reload re-reads a product right after a write. The two steps are not
// atomic, so a concurrent delete surfaces here as an internal error.
func (s *CatalogService) reload(ctx context.Context, id primitive.ObjectID) (models.ProductView, error) {
	p, err := s.products.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.ProductView{}, fmt.Errorf("product %s missing after write", id.Hex())
	}
	if err != nil {
		return models.ProductView{}, err
	}
	return s.Resolve(ctx, p)
}

func categoryRef(c models.Category) *models.CategoryRef {
	return &models.CategoryRef{ID: c.ID, Name: c.Name, Description: c.Description}
}

func view(p models.Product, ref *models.CategoryRef) models.ProductView {
	return models.ProductView{
		ID:       p.ID,
		Name:     p.Name,
		Category: ref,
		Price:    p.Price,
		Status:   p.Status,
	}
}
