package services

import (
	"context"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/pkg/event"
)

type UserService struct {
	repo   repositories.UserRepository
	events *event.Bus
}

func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, in models.UserInput) (models.User, error) {
	if err := check(in); err != nil {
		return models.User{}, err
	}
	u, err := s.repo.Create(ctx, models.User{Name: in.Name, Email: in.Email, Mobile: in.Mobile})
	return fired(ctx, s.events, UserCreated, u, err)
}

func (s *UserService) Update(ctx context.Context, id string, in models.UserPatch) (models.User, error) {
	oid, err := repositories.ParseID("User", id)
	if err != nil {
		return models.User{}, err
	}
	if err := check(in); err != nil {
		return models.User{}, err
	}

	changes := repositories.Changes{}
	setIfPresent(changes, "name", in.Name)
	setIfPresent(changes, "email", in.Email)
	setIfPresent(changes, "mobile", in.Mobile)

	u, err := s.repo.Update(ctx, oid, changes)
	return fired(ctx, s.events, UserUpdated, u, err)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	oid, err := repositories.ParseID("User", id)
	if err != nil {
		return err
	}
	return firedDelete(ctx, s.events, UserDeleted, oid, s.repo.Delete(ctx, oid))
}
