package admin_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/shashiranjanraj/fooddash/app/admin"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/internal/kernel"
)

// newClient starts the real API on an in-memory store.
func newClient(t *testing.T) *admin.Client {
	t.Helper()
	srv := httptest.NewServer(kernel.NewHTTPKernel(repositories.NewMemoryStore(), nil).Handler())
	t.Cleanup(srv.Close)
	return admin.NewClient(srv.URL + "/api")
}

type confirmer struct{ mock.Mock }

func (m *confirmer) Confirm(title, text string) bool {
	return m.Called(title, text).Bool(0)
}

func ptr[T any](v T) *T { return &v }
