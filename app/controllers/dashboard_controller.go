package controllers

import (
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
)

type DashboardController struct {
	service *services.DashboardService
}

func NewDashboardController(service *services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

func (c *DashboardController) Show(cx *ctx.Context) {
	summary, err := c.service.Summary(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(summary)
}
