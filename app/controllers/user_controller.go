package controllers

import (
	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/pkg/ctx"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) Index(cx *ctx.Context) {
	users, err := c.service.List(cx.Context())
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(users)
}

func (c *UserController) Store(cx *ctx.Context) {
	var in models.UserInput
	if !cx.BindJSON(&in) {
		return
	}

	user, err := c.service.Create(cx.Context(), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.Created(user)
}

func (c *UserController) Update(cx *ctx.Context) {
	var in models.UserPatch
	if !cx.BindJSON(&in) {
		return
	}

	user, err := c.service.Update(cx.Context(), cx.Param("id"), in)
	if err != nil {
		cx.Fail(err)
		return
	}
	cx.OK(user)
}

func (c *UserController) Destroy(cx *ctx.Context) {
	if err := c.service.Delete(cx.Context(), cx.Param("id")); err != nil {
		cx.Fail(err)
		return
	}
	cx.Deleted("User")
}
