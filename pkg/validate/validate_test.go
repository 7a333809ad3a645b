package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/fooddash/pkg/validate"
)

func ptr[T any](v T) *T { return &v }

type lineInput struct {
	ProductID string   `json:"productId" validate:"required,objectid"`
	Quantity  int      `json:"quantity"  validate:"required,min=1"`
	Price     *float64 `json:"price"     validate:"required"`
}

type orderInput struct {
	UserID string      `json:"userId" validate:"required,objectid"`
	Items  []lineInput `json:"items"  validate:"dive"`
	Total  *float64    `json:"totalAmount" validate:"required"`
}

func TestRequiredFails(t *testing.T) {
	type in struct {
		Name  string `json:"name"  validate:"required"`
		Email string `json:"email" validate:"required"`
	}
	errs := validate.Struct(in{Email: "   "})
	assert.True(t, validate.HasErrors(errs))
	assert.Equal(t, "The name field is required.", errs["name"])
	assert.Contains(t, errs, "email")
}

func TestRequiredPointerAcceptsZero(t *testing.T) {
	type in struct {
		Price *float64 `json:"price" validate:"required"`
	}
	assert.Empty(t, validate.Struct(in{Price: ptr(0.0)}))
	assert.Contains(t, validate.Struct(in{}), "price")
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	assert.Contains(t, validate.Struct(in{Email: "not-an-email"}), "email")
	assert.Empty(t, validate.Struct(in{Email: "valid@example.com"}))
}

func TestObjectIDRule(t *testing.T) {
	type in struct {
		ID string `json:"id" validate:"required,objectid"`
	}
	assert.Empty(t, validate.Struct(in{ID: "65f1c0ffee0123456789abcd"}))
	assert.Equal(t, "The id must be a valid id.", validate.Struct(in{ID: "123"})["id"])
}

func TestNumericBounds(t *testing.T) {
	type in struct {
		Qty int `json:"qty" validate:"required,gte=1,lte=99"`
	}
	assert.Contains(t, validate.Struct(in{Qty: 120}), "qty")
	assert.Empty(t, validate.Struct(in{Qty: 3}))
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"nullable,in=active,inactive"`
	}
	assert.Equal(t, "The selected status is invalid.", validate.Struct(in{Status: "archived"})["status"])
	assert.Empty(t, validate.Struct(in{Status: "inactive"}))
	assert.Empty(t, validate.Struct(in{}))
}

func TestPatchPointers(t *testing.T) {
	type patch struct {
		Name   *string `json:"name"   validate:"nullable,filled"`
		Status *string `json:"status" validate:"nullable,in=active,inactive"`
	}

	assert.Empty(t, validate.Struct(patch{}), "absent fields are left alone")
	assert.Empty(t, validate.Struct(patch{Name: ptr("Pizza"), Status: ptr("active")}))

	errs := validate.Struct(patch{Name: ptr(""), Status: ptr("gone")})
	assert.Equal(t, "The name field must have a value.", errs["name"])
	assert.Contains(t, errs, "status")
}

func TestDiveKeysErrorsByPath(t *testing.T) {
	errs := validate.Struct(orderInput{
		UserID: "65f1c0ffee0123456789abcd",
		Items: []lineInput{
			{ProductID: "65f1c0ffee0123456789abce", Quantity: 1, Price: ptr(5.0)},
			{ProductID: "nope", Quantity: -1},
		},
		Total: ptr(5.0),
	})

	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "items.1.productId")
	assert.Equal(t, "The items.1.quantity must be at least 1.", errs["items.1.quantity"])
	assert.Contains(t, errs, "items.1.price")
}

func TestDiveAllowsEmptySlice(t *testing.T) {
	errs := validate.Struct(orderInput{UserID: "65f1c0ffee0123456789abcd", Total: ptr(0.0)})
	assert.Empty(t, errs)
}

func TestStructPointer(t *testing.T) {
	in := &orderInput{}
	errs := validate.Struct(in)
	assert.Contains(t, errs, "userId")
	assert.Contains(t, errs, "totalAmount")
}
