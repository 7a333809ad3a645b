package seeders

import (
	"context"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/services"
)

func init() {
	Register("menu", SeedMenu)
	Register("users", SeedUsers)
}

type seedProduct struct {
	name  string
	price float64
}

var menu = []struct {
	category models.CategoryInput
	products []seedProduct
}{
	{
		category: models.CategoryInput{Name: "Burgers", Description: "Grilled to order"},
		products: []seedProduct{{"Classic Burger", 8.5}, {"Cheese Burger", 9.25}},
	},
	{
		category: models.CategoryInput{Name: "Pizza", Description: "Wood fired"},
		products: []seedProduct{{"Margherita", 11}, {"Pepperoni", 12.5}},
	},
	{
		category: models.CategoryInput{Name: "Drinks", Description: "Cold and hot beverages"},
		products: []seedProduct{{"Lemonade", 3}, {"Espresso", 2.5}},
	},
}

// SeedMenu creates the demo categories and their products. It does nothing
// when any category already exists.
func SeedMenu(ctx context.Context, svc *services.Services) error {
	existing, err := svc.Categories.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, group := range menu {
		category, err := svc.Categories.Create(ctx, group.category)
		if err != nil {
			return err
		}
		for _, p := range group.products {
			price := p.price
			if _, err := svc.Catalog.Create(ctx, models.ProductInput{
				Name:       p.name,
				CategoryID: category.ID.Hex(),
				Price:      &price,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}

var demoUsers = []models.UserInput{
	{Name: "Asha Verma", Email: "asha@example.com", Mobile: "9800000001"},
	{Name: "Ravi Kumar", Email: "ravi@example.com", Mobile: "9800000002"},
}

// SeedUsers creates the demo customers, skipping emails already taken.
func SeedUsers(ctx context.Context, svc *services.Services) error {
	users, err := svc.Users.List(ctx)
	if err != nil {
		return err
	}
	taken := make(map[string]bool, len(users))
	for _, u := range users {
		taken[u.Email] = true
	}

	for _, in := range demoUsers {
		if taken[in.Email] {
			continue
		}
		if _, err := svc.Users.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}
