package admin_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fooddash/app/admin"
	"github.com/shashiranjanraj/fooddash/app/models"
)

func newConsole(t *testing.T) (*admin.Console, *confirmer) {
	t.Helper()
	conf := &confirmer{}
	return admin.NewConsole(newClient(t), conf.Confirm), conf
}

func TestConsole_MountEmpty(t *testing.T) {
	c, _ := newConsole(t)
	require.NoError(t, c.Mount(context.Background()))

	assert.Equal(t, admin.Ready, c.Users.State())
	assert.Equal(t, admin.Ready, c.Orders.State())
	assert.Equal(t, models.DashboardSummary{}, c.Dashboard())
}

func TestConsole_UserCreateThenEdit(t *testing.T) {
	ctx := context.Background()
	c, _ := newConsole(t)

	c.UserForm.Set(models.UserInput{Name: "Asha", Email: "asha@example.com", Mobile: "1"})
	require.NoError(t, c.SaveUser(ctx))

	n, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, admin.Notice{Kind: admin.NoticeSuccess, Title: "User added"}, n)
	require.Equal(t, 1, c.Users.Len())

	c.DismissNotice()
	_, ok = c.Notice()
	assert.False(t, ok)

	u := c.Users.Items()[0]
	c.EditUser(u)
	form := c.UserForm.Form()
	form.Mobile = "2"
	c.UserForm.Set(form)
	require.NoError(t, c.SaveUser(ctx))

	n, _ = c.Notice()
	assert.Equal(t, "User updated", n.Title)
	assert.Equal(t, "2", c.Users.Items()[0].Mobile)
	assert.Equal(t, "Asha", c.UserLabel(u.ID.Hex()))
	assert.Equal(t, "64b0000000000000000000ff", c.UserLabel("64b0000000000000000000ff"))
}

func TestConsole_SaveFailureKeepsFormAndReportsMessage(t *testing.T) {
	ctx := context.Background()
	c, _ := newConsole(t)

	c.UserForm.Set(models.UserInput{Name: "No Contact"})
	require.Error(t, c.SaveUser(ctx))

	n, ok := c.Notice()
	require.True(t, ok)
	assert.Equal(t, admin.NoticeError, n.Kind)
	assert.Equal(t, "Create failed", n.Title)
	assert.Equal(t, "The email field is required.", n.Text)
	assert.Equal(t, "No Contact", c.UserForm.Form().Name)
}

func TestConsole_DeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	c, conf := newConsole(t)

	c.CategoryForm.Set(models.CategoryInput{Name: "Burgers", Description: "Grilled"})
	require.NoError(t, c.SaveCategory(ctx))
	id := c.Categories.Items()[0].ID.Hex()

	conf.On("Confirm", "Delete category?", mock.Anything).Return(false).Once()
	deleted, err := c.DeleteCategory(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, c.Mount(ctx))
	assert.Equal(t, 1, c.Categories.Len(), "declined delete must not reach the server")

	conf.On("Confirm", "Delete category?", mock.Anything).Return(true).Once()
	deleted, err = c.DeleteCategory(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, c.Categories.Len())

	conf.AssertExpectations(t)
}

func TestConsole_ProductsAreCachedOptimistically(t *testing.T) {
	ctx := context.Background()
	c, conf := newConsole(t)

	c.CategoryForm.Set(models.CategoryInput{Name: "Burgers", Description: "Grilled"})
	require.NoError(t, c.SaveCategory(ctx))
	cat := c.Categories.Items()[0]

	c.ProductForm.Set(models.ProductInput{Name: "Classic Burger", CategoryID: cat.ID.Hex(), Price: ptr(8.5)})
	require.NoError(t, c.SaveProduct(ctx))
	require.Equal(t, 1, c.Products.Len())
	p := c.Products.Items()[0]
	assert.Equal(t, "Burgers", p.Category.Name)
	assert.Equal(t, models.StatusActive, c.ProductForm.Form().Status, "form resets to its blank state")

	c.EditProduct(p)
	form := c.ProductForm.Form()
	form.Price = ptr(9.0)
	form.Status = models.StatusInactive
	c.ProductForm.Set(form)
	require.NoError(t, c.SaveProduct(ctx))
	assert.Equal(t, 9.0, c.Products.Items()[0].Price)
	assert.Equal(t, models.StatusInactive, c.Products.Items()[0].Status)

	conf.On("Confirm", "Delete product?", mock.Anything).Return(true)
	deleted, err := c.DeleteProduct(ctx, p.ID.Hex())
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 0, c.Products.Len())
}

func TestConsole_PlaceOrder(t *testing.T) {
	ctx := context.Background()
	c, _ := newConsole(t)

	c.UserForm.Set(models.UserInput{Name: "Asha", Email: "asha@example.com", Mobile: "1"})
	require.NoError(t, c.SaveUser(ctx))
	c.CategoryForm.Set(models.CategoryInput{Name: "Burgers", Description: "Grilled"})
	require.NoError(t, c.SaveCategory(ctx))
	catID := c.Categories.Items()[0].ID.Hex()

	c.ProductForm.Set(models.ProductInput{Name: "Classic Burger", CategoryID: catID, Price: ptr(5.0)})
	require.NoError(t, c.SaveProduct(ctx))
	c.ProductForm.Set(models.ProductInput{Name: "Fries", CategoryID: catID, Price: ptr(3.0)})
	require.NoError(t, c.SaveProduct(ctx))

	require.NoError(t, c.Mount(ctx))
	var burger, fries string
	for _, p := range c.Products.Items() {
		if p.Name == "Fries" {
			fries = p.ID.Hex()
		} else {
			burger = p.ID.Hex()
		}
	}

	assert.ErrorIs(t, c.AddToDraft("64b0000000000000000000ff", 1), admin.ErrUnknownProduct)

	c.Draft.SetUser(c.Users.Items()[0].ID.Hex())
	require.NoError(t, c.AddToDraft(burger, 2))
	require.NoError(t, c.AddToDraft(fries, 1))
	require.NoError(t, c.IncrementDraft(fries))
	c.Draft.Decrement(fries)
	assert.Equal(t, 13.0, c.Draft.Total())

	order, err := c.PlaceOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13.0, order.TotalAmount)
	assert.Equal(t, order.ID, c.Orders.Items()[0].ID)
	assert.Empty(t, c.Draft.Lines())

	require.NoError(t, c.RefreshDashboard(ctx))
	assert.Equal(t, models.DashboardSummary{TotalUsers: 1, TotalProducts: 2, TotalOrders: 1, TotalRevenue: 13}, c.Dashboard())

	_, err = c.PlaceOrder(ctx)
	assert.ErrorIs(t, err, admin.ErrNoUser)
	n, _ := c.Notice()
	assert.Equal(t, admin.NoticeError, n.Kind)
}
