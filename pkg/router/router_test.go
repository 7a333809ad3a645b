package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fooddash/pkg/router"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func TestGroupNamedRoutes(t *testing.T) {
	r := router.New()
	api := r.Group("/api")
	users := api.Group("users/")
	users.Get("", "users.index", ok)
	users.Put("/{id}", "users.update", ok)
	users.Delete("/{id}", "users.destroy", ok)

	path, found := r.Path("users.update")
	require.True(t, found)
	assert.Equal(t, "/api/users/{id}", path)

	url, err := r.URL("users.destroy", map[string]string{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/users/42", url)

	_, err = r.URL("users.update", nil)
	assert.Error(t, err)

	assert.Equal(t, []router.RouteInfo{
		{Method: http.MethodGet, Path: "/api/users", Name: "users.index"},
		{Method: http.MethodPut, Path: "/api/users/{id}", Name: "users.update"},
		{Method: http.MethodDelete, Path: "/api/users/{id}", Name: "users.destroy"},
	}, r.Routes())
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := router.New()
	g := r.Group("/api", tag("group"))
	g.Post("/things", "things.store", ok, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/things", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}

func TestNotFoundHandler(t *testing.T) {
	r := router.New()
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) })

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
