package controllers

import (
	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(service *services.CategoryService) *CategoryController {
	return &CategoryController{service: service}
}

func (c *CategoryController) Index(cx *ctx.Context) {
	categories, err := c.service.List(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(categories)
}

func (c *CategoryController) Store(cx *ctx.Context) {
	var in models.CategoryInput
	if !cx.BindJSON(&in) {
		return
	}

	category, err := c.service.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(category)
}

func (c *CategoryController) Update(cx *ctx.Context) {
	var in models.CategoryPatch
	if !cx.BindJSON(&in) {
		return
	}

	category, err := c.service.Update(cx.Context(), cx.Param("id"), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(category)
}

// Destroy removes the category only; products keep their now dangling
// categoryId.
func (c *CategoryController) Destroy(cx *ctx.Context) {
	if err := c.service.Delete(cx.Context(), cx.Param("id")); err != nil {
		cx.Fail(err)
		return
	}
	cx.Deleted("Category")
}
