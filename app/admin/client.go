// Package admin is the operator-side client: a typed REST client plus the
// local state an admin console keeps between requests (per-resource
// lists, the edit/create toggle and the draft order).
package admin

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shashiranjanraj/fooddash/app/models"
	fdhttp "github.com/shashiranjanraj/fooddash/pkg/http"
)

// APIError is a non-2xx response decoded from the {message, errors} body.
type APIError struct {
	Status  int
	Message string
	Errors  map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// NotFound reports whether the server answered 404.
func (e *APIError) NotFound() bool { return e.Status == http.StatusNotFound }

// Client calls the /api endpoints. Every call is sent once.
type Client struct {
	http *fdhttp.Client
}

// NewClient targets baseURL, e.g. "http://localhost:5001/api".
func NewClient(baseURL string, opts ...fdhttp.Option) *Client {
	return &Client{http: fdhttp.New(baseURL, opts...)}
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return send[[]models.User](ctx, c.http.Get("users"))
}

func (c *Client) CreateUser(ctx context.Context, in models.UserInput) (models.User, error) {
	return send[models.User](ctx, c.http.Post("users").Body(in))
}

func (c *Client) UpdateUser(ctx context.Context, id string, in models.UserPatch) (models.User, error) {
	return send[models.User](ctx, c.http.Put("users/"+id).Body(in))
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return sendDelete(ctx, c.http.Delete("users/"+id))
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	return send[[]models.Category](ctx, c.http.Get("categories"))
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) (models.Category, error) {
	return send[models.Category](ctx, c.http.Post("categories").Body(in))
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryPatch) (models.Category, error) {
	return send[models.Category](ctx, c.http.Put("categories/"+id).Body(in))
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return sendDelete(ctx, c.http.Delete("categories/"+id))
}

func (c *Client) ListProducts(ctx context.Context) ([]models.ProductView, error) {
	return send[[]models.ProductView](ctx, c.http.Get("products"))
}

func (c *Client) CreateProduct(ctx context.Context, in models.ProductInput) (models.ProductView, error) {
	return send[models.ProductView](ctx, c.http.Post("products").Body(in))
}

func (c *Client) UpdateProduct(ctx context.Context, id string, in models.ProductPatch) (models.ProductView, error) {
	return send[models.ProductView](ctx, c.http.Put("products/"+id).Body(in))
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return sendDelete(ctx, c.http.Delete("products/"+id))
}

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return send[[]models.Order](ctx, c.http.Get("orders"))
}

func (c *Client) CreateOrder(ctx context.Context, in models.OrderInput) (models.Order, error) {
	return send[models.Order](ctx, c.http.Post("orders").Body(in))
}

func (c *Client) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	return send[models.DashboardSummary](ctx, c.http.Get("dashboard"))
}

type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func send[T any](ctx context.Context, req *fdhttp.Request) (T, error) {
	var out T

	resp, err := req.WithContext(ctx).Send()
	if err != nil {
		return out, err
	}
	if !resp.OK() {
		return out, apiError(resp)
	}
	if err := resp.JSON(&out); err != nil {
		return out, err
	}
	return out, nil
}

func sendDelete(ctx context.Context, req *fdhttp.Request) error {
	_, err := send[errorBody](ctx, req)
	return err
}

func apiError(resp *fdhttp.Response) *APIError {
	var body errorBody
	if err := resp.JSON(&body); err != nil || body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: body.Message, Errors: body.Errors}
}
