package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
)

func TestMemory_CreateAssignsIDAndKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	first, err := store.Categories.Create(ctx, models.Category{Name: "Burgers", Description: "Grilled"})
	require.NoError(t, err)
	second, err := store.Categories.Create(ctx, models.Category{Name: "Drinks", Description: "Cold"})
	require.NoError(t, err)

	assert.False(t, first.ID.IsZero())
	assert.NotEqual(t, first.ID, second.ID)

	list, err := store.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Burgers", list[0].Name)
	assert.Equal(t, "Drinks", list[1].Name)
}

func TestMemory_ListEmptyIsNotNil(t *testing.T) {
	list, err := repositories.NewMemoryStore().Users.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestMemory_UpdateMergesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	p, err := store.Products.Create(ctx, models.Product{
		Name:       "Classic Burger",
		CategoryID: primitive.NewObjectID(),
		Price:      8.5,
		Status:     models.StatusActive,
	})
	require.NoError(t, err)

	updated, err := store.Products.Update(ctx, p.ID, repositories.Changes{"price": 9.0})
	require.NoError(t, err)
	assert.Equal(t, 9.0, updated.Price)
	assert.Equal(t, "Classic Burger", updated.Name)
	assert.Equal(t, p.CategoryID, updated.CategoryID)
	assert.Equal(t, p.ID, updated.ID)

	stored, err := store.Products.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestMemory_UpdateWithoutChangesReturnsCurrent(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	c, err := store.Categories.Create(ctx, models.Category{Name: "Sides", Description: "Fries"})
	require.NoError(t, err)

	got, err := store.Categories.Update(ctx, c.ID, repositories.Changes{})
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestMemory_NotFound(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()
	missing := primitive.NewObjectID()

	_, err := store.Users.Update(ctx, missing, repositories.Changes{"name": "x"})
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.EqualError(t, err, "User not found")

	err = store.Products.Delete(ctx, missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.EqualError(t, err, "Product not found")

	_, err = store.Categories.FindByID(ctx, missing)
	var nf *repositories.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "Category", nf.Entity)
}

func TestMemory_DeleteRemovesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	a, _ := store.Categories.Create(ctx, models.Category{Name: "A", Description: "a"})
	b, _ := store.Categories.Create(ctx, models.Category{Name: "B", Description: "b"})

	require.NoError(t, store.Categories.Delete(ctx, a.ID))

	list, err := store.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	n, err := store.Categories.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func TestMemory_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	ann, err := store.Users.Create(ctx, models.User{Name: "Ann", Email: "ann@x.io", Mobile: "1"})
	require.NoError(t, err)
	bob, err := store.Users.Create(ctx, models.User{Name: "Bob", Email: "bob@x.io", Mobile: "2"})
	require.NoError(t, err)

	_, err = store.Users.Create(ctx, models.User{Name: "Ann 2", Email: "ann@x.io", Mobile: "3"})
	var verr *repositories.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The email has already been taken.", verr.Errors["email"])

	_, err = store.Users.Update(ctx, bob.ID, repositories.Changes{"email": "ann@x.io"})
	assert.True(t, repositories.IsValidation(err))

	// re-saving your own email is not a conflict
	_, err = store.Users.Update(ctx, ann.ID, repositories.Changes{"email": "ann@x.io", "name": "Ann B"})
	assert.NoError(t, err)

	n, _ := store.Users.Count(ctx)
	assert.EqualValues(t, 2, n)
}

func TestMemory_FindByIDsSkipsMissing(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	a, _ := store.Categories.Create(ctx, models.Category{Name: "A", Description: "a"})
	got, err := store.Categories.FindByIDs(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID(), a.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)

	got, err = store.Categories.FindByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemory_OrdersSumAndCount(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryStore()

	total, err := store.Orders.SumTotalAmount(ctx)
	require.NoError(t, err)
	assert.Zero(t, total)

	for _, amount := range []float64{13, 7.25} {
		_, err := store.Orders.Create(ctx, models.Order{
			UserID:      primitive.NewObjectID(),
			Items:       []models.OrderItem{},
			TotalAmount: amount,
			OrderDate:   time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	total, err = store.Orders.SumTotalAmount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20.25, total)

	n, err := store.Orders.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func TestMemory_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repositories.NewMemoryStore().Users.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStore_Backend(t *testing.T) {
	store := repositories.NewMemoryStore()
	assert.Equal(t, "memory", store.Driver())
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.EnsureIndexes(context.Background()))
}
