package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/fooddash/app/admin"
	"github.com/shashiranjanraj/fooddash/app/models"
)

func product(name string, price float64) models.ProductView {
	return models.ProductView{ID: primitive.NewObjectID(), Name: name, Price: price, Status: models.StatusActive}
}

func TestDraft_AddMergesAndRefreshesPrice(t *testing.T) {
	d := admin.NewDraft()
	burger := product("Classic Burger", 5)
	fries := product("Fries", 3)

	require.NoError(t, d.Add(burger, 2))
	require.NoError(t, d.Add(fries, 1))
	assert.Equal(t, 13.0, d.Total())

	burger.Price = 6
	require.NoError(t, d.Increment(burger))

	lines := d.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 6.0, lines[0].Price)
	assert.Equal(t, "Fries", lines[1].Name)
	assert.Equal(t, 21.0, d.Total())
}

func TestDraft_PriceIsCopiedAtAddTime(t *testing.T) {
	d := admin.NewDraft()
	burger := product("Classic Burger", 5)
	require.NoError(t, d.Add(burger, 1))

	burger.Price = 9
	assert.Equal(t, 5.0, d.Total())
}

func TestDraft_RejectsNonPositiveQuantity(t *testing.T) {
	d := admin.NewDraft()
	assert.ErrorIs(t, d.Add(product("x", 1), 0), admin.ErrInvalidQuantity)
	assert.Empty(t, d.Lines())
}

func TestDraft_DecrementAndRemove(t *testing.T) {
	d := admin.NewDraft()
	burger := product("Classic Burger", 5)
	fries := product("Fries", 3)
	require.NoError(t, d.Add(burger, 2))
	require.NoError(t, d.Add(fries, 1))

	d.Decrement(burger.ID.Hex())
	assert.Equal(t, 1, d.Lines()[0].Quantity)

	d.Decrement(burger.ID.Hex())
	require.Len(t, d.Lines(), 1)
	assert.Equal(t, "Fries", d.Lines()[0].Name)

	d.Decrement("unknown")
	d.Remove(fries.ID.Hex())
	assert.Empty(t, d.Lines())
	assert.Equal(t, 0.0, d.Total())
}

func TestDraft_Submit(t *testing.T) {
	ctx := context.Background()
	d := admin.NewDraft()
	burger := product("Classic Burger", 5)

	_, err := d.Submit(ctx, nil)
	assert.ErrorIs(t, err, admin.ErrNoUser)

	d.SetUser("64b000000000000000000001")
	_, err = d.Submit(ctx, nil)
	assert.ErrorIs(t, err, admin.ErrEmptyDraft)

	require.NoError(t, d.Add(burger, 2))

	_, err = d.Submit(ctx, func(context.Context, models.OrderInput) (models.Order, error) {
		return models.Order{}, errors.New("down")
	})
	require.Error(t, err)
	assert.Len(t, d.Lines(), 1, "a failed submit keeps the draft")

	var sent models.OrderInput
	_, err = d.Submit(ctx, func(_ context.Context, in models.OrderInput) (models.Order, error) {
		sent = in
		return models.Order{ID: primitive.NewObjectID()}, nil
	})
	require.NoError(t, err)

	require.NotNil(t, sent.TotalAmount)
	assert.Equal(t, 10.0, *sent.TotalAmount)
	assert.Equal(t, "64b000000000000000000001", sent.UserID)
	require.Len(t, sent.Items, 1)
	assert.Equal(t, burger.ID.Hex(), sent.Items[0].ProductID)
	assert.Equal(t, 2, sent.Items[0].Quantity)

	assert.Empty(t, d.Lines())
	assert.Empty(t, d.UserID())
}
