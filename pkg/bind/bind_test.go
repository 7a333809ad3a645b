package bind_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/fooddash/pkg/bind"
)

type payload struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
}

func TestJSON_Decodes(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"Soup","price":0}`))

	var p payload
	require.NoError(t, bind.JSON(req, &p))
	assert.Equal(t, "Soup", p.Name)
	require.NotNil(t, p.Price)
	assert.Zero(t, *p.Price)
}

func TestJSON_EmptyBodyIsEmptyObject(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(""))

	var p payload
	require.NoError(t, bind.JSON(req, &p))
	assert.Empty(t, p.Name)
	assert.Nil(t, p.Price)
}

func TestJSON_Malformed(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":`))

	var p payload
	err := bind.JSON(req, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestJSON_TrailingData(t *testing.T) {
	for _, body := range []string{
		`{"name":"a"} trailing`,
		`{"name":"a"}{"name":"b"}`,
		`{"name":"a"}}`,
	} {
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var p payload
		err := bind.JSON(req, &p)
		require.Error(t, err, body)
		assert.Contains(t, err.Error(), "invalid JSON", body)
	}
}

func TestJSON_TrailingWhitespace(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader("{\"name\":\"a\"}\n  \n"))

	var p payload
	require.NoError(t, bind.JSON(req, &p))
	assert.Equal(t, "a", p.Name)
}

func TestJSON_TooLarge(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "16")
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))

	var p payload
	err := bind.JSON(req, &p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}
