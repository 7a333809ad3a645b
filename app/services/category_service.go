package services

import (
	"context"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/pkg/event"
)

type CategoryService struct {
	repo   repositories.CategoryRepository
	events *event.Bus
}

func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	if err := check(in); err != nil {
		return models.Category{}, err
	}
	c, err := s.repo.Create(ctx, models.Category{Name: in.Name, Description: in.Description})
	return fired(ctx, s.events, CategoryCreated, c, err)
}

func (s *CategoryService) Update(ctx context.Context, id string, in models.CategoryPatch) (models.Category, error) {
	oid, err := repositories.ParseID("Category", id)
	if err != nil {
		return models.Category{}, err
	}
	if err := check(in); err != nil {
		return models.Category{}, err
	}

	changes := repositories.Changes{}
	setIfPresent(changes, "name", in.Name)
	setIfPresent(changes, "description", in.Description)

	c, err := s.repo.Update(ctx, oid, changes)
	return fired(ctx, s.events, CategoryUpdated, c, err)
}

// Delete removes the category only; products that reference it keep the
// dangling id and resolve to a null category afterwards.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	oid, err := repositories.ParseID("Category", id)
	if err != nil {
		return err
	}
	return firedDelete(ctx, s.events, CategoryDeleted, oid, s.repo.Delete(ctx, oid))
}
