package admin

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/pkg/logger"
)

// ErrUnknownProduct is returned when a draft line names a product that is
// not in the cached product list.
var ErrUnknownProduct = errors.New("product not found in the product list")

// ConfirmFunc asks the operator to confirm a destructive action.
type ConfirmFunc func(title, text string) bool

// NoticeKind tells a success notice from an error one.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the last transient message shown to the operator.
type Notice struct {
	Kind  NoticeKind
	Title string
	Text  string
}

// Console wires the client to one state container per resource. Users and
// categories are re-fetched after each write; products and orders patch
// their cached lists in place.
type Console struct {
	client  *Client
	confirm ConfirmFunc

	Users      *Resource[models.User]
	Categories *Resource[models.Category]
	Products   *Resource[models.ProductView]
	Orders     *Resource[models.Order]

	UserForm     *Editor[models.UserInput]
	CategoryForm *Editor[models.CategoryInput]
	ProductForm  *Editor[models.ProductInput]
	Draft        *Draft

	mu        sync.Mutex
	dashboard models.DashboardSummary
	notice    *Notice
}

// NewConsole builds a console. A nil confirm declines every delete.
func NewConsole(client *Client, confirm ConfirmFunc) *Console {
	if confirm == nil {
		confirm = func(string, string) bool { return false }
	}
	return &Console{
		client:       client,
		confirm:      confirm,
		Users:        NewResource(func(u models.User) string { return u.ID.Hex() }),
		Categories:   NewResource(func(c models.Category) string { return c.ID.Hex() }),
		Products:     NewResource(func(p models.ProductView) string { return p.ID.Hex() }),
		Orders:       NewResource(func(o models.Order) string { return o.ID.Hex() }),
		UserForm:     NewEditor(models.UserInput{}),
		CategoryForm: NewEditor(models.CategoryInput{}),
		ProductForm:  NewEditor(models.ProductInput{Status: models.StatusActive}),
		Draft:        NewDraft(),
	}
}

// Mount fetches every list and the dashboard. Each failure is kept on its
// resource; the joined error is returned.
func (c *Console) Mount(ctx context.Context) error {
	return errors.Join(
		c.Users.Load(ctx, c.client.ListUsers),
		c.Categories.Load(ctx, c.client.ListCategories),
		c.Products.Load(ctx, c.client.ListProducts),
		c.Orders.Load(ctx, c.client.ListOrders),
		c.RefreshDashboard(ctx),
	)
}

func (c *Console) RefreshDashboard(ctx context.Context) error {
	summary, err := c.client.Dashboard(ctx)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.dashboard = summary
	c.mu.Unlock()
	return nil
}

func (c *Console) Dashboard() models.DashboardSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dashboard
}

// ─── Notices ──────────────────────────────────────────────────────────────────

// Notice returns the pending notice, if any.
func (c *Console) Notice() (Notice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notice == nil {
		return Notice{}, false
	}
	return *c.notice, true
}

func (c *Console) DismissNotice() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = nil
}

func (c *Console) succeed(title string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notice = &Notice{Kind: NoticeSuccess, Title: title}
}

func (c *Console) failed(ctx context.Context, title, text string, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		text = apiErr.Message
	}
	c.mu.Lock()
	c.notice = &Notice{Kind: NoticeError, Title: title, Text: text}
	c.mu.Unlock()

	logger.WithCtx(ctx).Warn("admin: "+title, "error", err)
	return err
}

// ─── Users ────────────────────────────────────────────────────────────────────

// EditUser loads u into the user form in edit mode.
func (c *Console) EditUser(u models.User) {
	c.UserForm.Edit(u.ID.Hex(), models.UserInput{Name: u.Name, Email: u.Email, Mobile: u.Mobile})
}

func (c *Console) SaveUser(ctx context.Context) error {
	updated, err := c.UserForm.Submit(ctx,
		func(ctx context.Context, f models.UserInput) error {
			_, err := c.client.CreateUser(ctx, f)
			return err
		},
		func(ctx context.Context, id string, f models.UserInput) error {
			_, err := c.client.UpdateUser(ctx, id, models.UserPatch{Name: &f.Name, Email: &f.Email, Mobile: &f.Mobile})
			return err
		},
	)
	if err != nil {
		if updated {
			return c.failed(ctx, "Update failed", "Could not update user", err)
		}
		return c.failed(ctx, "Create failed", "Could not add user", err)
	}

	c.succeed(pick(updated, "User updated", "User added"))
	return c.Users.Load(ctx, c.client.ListUsers)
}

// DeleteUser asks for confirmation first; deleted is false when the
// operator declined and no request was sent.
func (c *Console) DeleteUser(ctx context.Context, id string) (deleted bool, err error) {
	if !c.confirm("Delete user?", "This action cannot be undone") {
		return false, nil
	}
	if err := c.client.DeleteUser(ctx, id); err != nil {
		return false, c.failed(ctx, "Delete failed", "Could not delete user", err)
	}
	c.succeed("User deleted")
	return true, c.Users.Load(ctx, c.client.ListUsers)
}

// UserLabel resolves an order's userId to a display name from the cached
// users, falling back to the id itself.
func (c *Console) UserLabel(id string) string {
	if u, ok := c.Users.Find(id); ok {
		return u.Name
	}
	return id
}

// ─── Categories ───────────────────────────────────────────────────────────────

func (c *Console) EditCategory(cat models.Category) {
	c.CategoryForm.Edit(cat.ID.Hex(), models.CategoryInput{Name: cat.Name, Description: cat.Description})
}

func (c *Console) SaveCategory(ctx context.Context) error {
	updated, err := c.CategoryForm.Submit(ctx,
		func(ctx context.Context, f models.CategoryInput) error {
			_, err := c.client.CreateCategory(ctx, f)
			return err
		},
		func(ctx context.Context, id string, f models.CategoryInput) error {
			_, err := c.client.UpdateCategory(ctx, id, models.CategoryPatch{Name: &f.Name, Description: &f.Description})
			return err
		},
	)
	if err != nil {
		if updated {
			return c.failed(ctx, "Update failed", "Could not update category", err)
		}
		return c.failed(ctx, "Create failed", "Could not add category", err)
	}

	c.succeed(pick(updated, "Category updated", "Category added"))
	return c.Categories.Load(ctx, c.client.ListCategories)
}

func (c *Console) DeleteCategory(ctx context.Context, id string) (bool, error) {
	if !c.confirm("Delete category?", "This action cannot be undone") {
		return false, nil
	}
	if err := c.client.DeleteCategory(ctx, id); err != nil {
		return false, c.failed(ctx, "Delete failed", "Could not delete category", err)
	}
	c.succeed("Category deleted")
	return true, c.Categories.Load(ctx, c.client.ListCategories)
}

// ─── Products ─────────────────────────────────────────────────────────────────

func (c *Console) EditProduct(p models.ProductView) {
	price := p.Price
	c.ProductForm.Edit(p.ID.Hex(), models.ProductInput{
		Name:       p.Name,
		CategoryID: p.CategoryHex(),
		Price:      &price,
		Status:     p.Status,
	})
}

func (c *Console) SaveProduct(ctx context.Context) error {
	updated, err := c.ProductForm.Submit(ctx,
		func(ctx context.Context, f models.ProductInput) error {
			p, err := c.client.CreateProduct(ctx, f)
			if err == nil {
				c.Products.Prepend(p)
			}
			return err
		},
		func(ctx context.Context, id string, f models.ProductInput) error {
			patch := models.ProductPatch{Name: &f.Name, Price: f.Price}
			if f.CategoryID != "" {
				patch.CategoryID = &f.CategoryID
			}
			if f.Status != "" {
				patch.Status = &f.Status
			}
			p, err := c.client.UpdateProduct(ctx, id, patch)
			if err == nil && !c.Products.Replace(p) {
				c.Products.Prepend(p)
			}
			return err
		},
	)
	if err != nil {
		if updated {
			return c.failed(ctx, "Update failed", "Could not update product", err)
		}
		return c.failed(ctx, "Create failed", "Could not add product", err)
	}

	c.succeed(pick(updated, "Product updated", "Product added"))
	return nil
}

func (c *Console) DeleteProduct(ctx context.Context, id string) (bool, error) {
	if !c.confirm("Delete product?", "This action cannot be undone") {
		return false, nil
	}
	if err := c.client.DeleteProduct(ctx, id); err != nil {
		return false, c.failed(ctx, "Delete failed", "Could not delete product", err)
	}
	c.Products.Remove(id)
	c.succeed("Product deleted")
	return true, nil
}

// ─── Orders ───────────────────────────────────────────────────────────────────

// AddToDraft adds qty of a cached product to the draft order.
func (c *Console) AddToDraft(productID string, qty int) error {
	p, ok := c.Products.Find(productID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
	}
	return c.Draft.Add(p, qty)
}

// IncrementDraft re-adds one unit, refreshing the line's price from the
// cached product.
func (c *Console) IncrementDraft(productID string) error {
	return c.AddToDraft(productID, 1)
}

// PlaceOrder submits the draft and puts the created order first in the
// order list.
func (c *Console) PlaceOrder(ctx context.Context) (models.Order, error) {
	order, err := c.Draft.Submit(ctx, c.client.CreateOrder)
	if err != nil {
		return models.Order{}, c.failed(ctx, "Create failed", "Could not create order", err)
	}
	c.Orders.Prepend(order)
	c.succeed("Order created")
	return order, nil
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
