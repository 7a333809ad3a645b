package controllers

import (
	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
)

// ProductController serves products with their category embedded.
type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

func (c *ProductController) Index(cx *ctx.Context) {
	products, err := c.catalog.List(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(products)
}

func (c *ProductController) Store(cx *ctx.Context) {
	var in models.ProductInput
	if !cx.BindJSON(&in) {
		return
	}

	product, err := c.catalog.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(product)
}

func (c *ProductController) Update(cx *ctx.Context) {
	var in models.ProductPatch
	if !cx.BindJSON(&in) {
		return
	}

	product, err := c.catalog.Update(cx.Context(), cx.Param("id"), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(product)
}

func (c *ProductController) Destroy(cx *ctx.Context) {
	if err := c.catalog.Delete(cx.Context(), cx.Param("id")); err != nil {
		cx.Fail(err)
		return
	}
	cx.Deleted("Product")
}
