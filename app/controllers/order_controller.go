package controllers

import (
	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
)

// OrderController lists and records orders. Orders cannot be edited or
// deleted.
type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

func (c *OrderController) Index(cx *ctx.Context) {
	orders, err := c.service.List(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(orders)
}

func (c *OrderController) Store(cx *ctx.Context) {
	var in models.OrderInput
	if !cx.BindJSON(&in) {
		return
	}

	order, err := c.service.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(order)
}
