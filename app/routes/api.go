// Package routes registers the /api endpoints.
package routes

import (
	"github.com/shashiranjanraj/fooddash/app/controllers"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
	"github.com/shashiranjanraj/fooddash/pkg/router"
)

func RegisterAPI(r *router.Router, svc *services.Services) {
	users := controllers.NewUserController(svc.Users)
	categories := controllers.NewCategoryController(svc.Categories)
	products := controllers.NewProductController(svc.Catalog)
	orders := controllers.NewOrderController(svc.Orders)
	dashboard := controllers.NewDashboardController(svc.Dashboard)

	api := r.Group("/api")

	api.Get("/users", "users.index", ctx.Wrap(users.Index))
	api.Post("/users", "users.store", ctx.Wrap(users.Store))
	api.Put("/users/{id}", "users.update", ctx.Wrap(users.Update))
	api.Delete("/users/{id}", "users.destroy", ctx.Wrap(users.Destroy))

	api.Get("/categories", "categories.index", ctx.Wrap(categories.Index))
	api.Post("/categories", "categories.store", ctx.Wrap(categories.Store))
	api.Put("/categories/{id}", "categories.update", ctx.Wrap(categories.Update))
	api.Delete("/categories/{id}", "categories.destroy", ctx.Wrap(categories.Destroy))

	api.Get("/products", "products.index", ctx.Wrap(products.Index))
	api.Post("/products", "products.store", ctx.Wrap(products.Store))
	api.Put("/products/{id}", "products.update", ctx.Wrap(products.Update))
	api.Delete("/products/{id}", "products.destroy", ctx.Wrap(products.Destroy))

	api.Get("/orders", "orders.index", ctx.Wrap(orders.Index))
	api.Post("/orders", "orders.store", ctx.Wrap(orders.Store))

	api.Get("/dashboard", "dashboard.show", ctx.Wrap(dashboard.Show))
}
