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

func categories(names ...string) []models.Category {
	out := make([]models.Category, 0, len(names))
	for _, n := range names {
		out = append(out, models.Category{ID: primitive.NewObjectID(), Name: n})
	}
	return out
}

func newCategoryResource() *admin.Resource[models.Category] {
	return admin.NewResource(func(c models.Category) string { return c.ID.Hex() })
}

func TestResource_Transitions(t *testing.T) {
	r := newCategoryResource()
	assert.Equal(t, admin.Idle, r.State())
	assert.NotNil(t, r.Items())

	r.Begin()
	assert.Equal(t, "loading", r.State().String())

	items := categories("Burgers", "Pizza")
	r.Succeed(items)
	assert.Equal(t, admin.Ready, r.State())
	assert.Equal(t, items, r.Items())

	boom := errors.New("boom")
	r.Begin()
	r.Fail(boom)
	assert.Equal(t, admin.Failed, r.State())
	assert.Equal(t, "error", r.State().String())
	assert.ErrorIs(t, r.Err(), boom)
	assert.Len(t, r.Items(), 2, "a failed fetch keeps the previous items")
}

func TestResource_Load(t *testing.T) {
	r := newCategoryResource()

	err := r.Load(context.Background(), func(context.Context) ([]models.Category, error) {
		return nil, errors.New("unreachable")
	})
	require.Error(t, err)
	assert.Equal(t, admin.Failed, r.State())

	require.NoError(t, r.Load(context.Background(), func(context.Context) ([]models.Category, error) {
		return categories("Drinks"), nil
	}))
	assert.Equal(t, admin.Ready, r.State())
	assert.NoError(t, r.Err())
}

func TestResource_Mutations(t *testing.T) {
	r := newCategoryResource()
	items := categories("Burgers", "Pizza")
	r.Succeed(items)

	added := categories("Drinks")[0]
	r.Prepend(added)
	assert.Equal(t, "Drinks", r.Items()[0].Name)

	renamed := items[1]
	renamed.Name = "Pizzas"
	assert.True(t, r.Replace(renamed))
	got, ok := r.Find(renamed.ID.Hex())
	require.True(t, ok)
	assert.Equal(t, "Pizzas", got.Name)

	assert.False(t, r.Replace(categories("Ghost")[0]))

	assert.True(t, r.Remove(items[0].ID.Hex()))
	assert.False(t, r.Remove(items[0].ID.Hex()))
	assert.Equal(t, 2, r.Len())
}

func TestResource_Page(t *testing.T) {
	r := newCategoryResource()
	r.Succeed(categories("a", "b", "c", "d", "e", "f", "g"))

	assert.Equal(t, 2, r.PageCount(5))
	assert.Len(t, r.Page(1, 5), 5)
	assert.Len(t, r.Page(2, 5), 2)
	assert.Empty(t, r.Page(3, 5))

	page := r.Page(1, 5)
	page[0].Name = "mutated"
	assert.Equal(t, "a", r.Items()[0].Name)
}

func TestEditor_Toggle(t *testing.T) {
	ctx := context.Background()
	e := admin.NewEditor(models.CategoryInput{})

	var created, updated []string
	create := func(_ context.Context, f models.CategoryInput) error {
		created = append(created, f.Name)
		return nil
	}
	update := func(_ context.Context, id string, f models.CategoryInput) error {
		updated = append(updated, id+":"+f.Name)
		return nil
	}

	e.Set(models.CategoryInput{Name: "Burgers"})
	wasUpdate, err := e.Submit(ctx, create, update)
	require.NoError(t, err)
	assert.False(t, wasUpdate)

	e.Edit("c1", models.CategoryInput{Name: "Pizza"})
	id, editing := e.EditingID()
	assert.True(t, editing)
	assert.Equal(t, "c1", id)

	wasUpdate, err = e.Submit(ctx, create, update)
	require.NoError(t, err)
	assert.True(t, wasUpdate)

	assert.Equal(t, []string{"Burgers"}, created)
	assert.Equal(t, []string{"c1:Pizza"}, updated)

	_, editing = e.EditingID()
	assert.False(t, editing)
	assert.Equal(t, models.CategoryInput{}, e.Form())
}

func TestEditor_KeepsFormOnFailure(t *testing.T) {
	e := admin.NewEditor(models.CategoryInput{})
	e.Edit("c1", models.CategoryInput{Name: "Pizza"})

	_, err := e.Submit(context.Background(), nil, func(context.Context, string, models.CategoryInput) error {
		return errors.New("rejected")
	})
	require.Error(t, err)

	id, editing := e.EditingID()
	assert.True(t, editing)
	assert.Equal(t, "c1", id)
	assert.Equal(t, "Pizza", e.Form().Name)
}
