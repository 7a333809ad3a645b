// Package ctx provides a gin.Context-inspired request context for handlers.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helper methods:
//
//	func (c *UserController) Update(cx *ctx.Context) {
//	    var in models.UserPatch
//	    if !cx.BindJSON(&in) {
//	        return // 400 already sent
//	    }
//	    user, err := c.service.Update(cx.Context(), cx.Param("id"), in)
//	    if err != nil {
//	        cx.Fail(err)
//	        return
//	    }
//	    cx.OK(user)
//	}
//
//	// Register with ctx.Wrap:
//	router.Put("/users/{id}", "users.update", ctx.Wrap(users.Update))
package ctx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/fooddash/pkg/bind"
	"github.com/shashiranjanraj/fooddash/pkg/logger"
	"github.com/shashiranjanraj/fooddash/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// ─── Context ──────────────────────────────────────────────────────────────────

// Context wraps a request/response pair.
type Context struct {
	W      http.ResponseWriter
	R      *http.Request
	status int // written status code (0 = not written yet)
}

// pool recycles Context objects to reduce GC pressure.
var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	c.status = 0
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter (e.g. "/users/{id}" → c.Param("id")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

// Context returns the underlying request context.
func (c *Context) Context() context.Context { return c.R.Context() }

// Logger returns the request-scoped logger (tagged with request_id).
func (c *Context) Logger() *slog.Logger { return logger.WithCtx(c.R.Context()) }

// BindJSON decodes the JSON body into dest. On a malformed or oversized
// body it sends a 400 and returns false. Validation is left to the
// service layer.
//
//	var in models.CategoryInput
//	if !c.BindJSON(&in) {
//	    return // response already sent
//	}
func (c *Context) BindJSON(dest any) bool {
	if err := bind.JSON(c.R, dest); err != nil {
		c.Message(http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// ─── Response helpers ─────────────────────────────────────────────────────────

// JSON writes v with the given status code.
func (c *Context) JSON(code int, v any) {
	c.status = code
	response.JSON(c.W, code, v)
}

// OK sends v with 200.
func (c *Context) OK(v any) { c.JSON(http.StatusOK, v) }

// Created sends v with 201.
func (c *Context) Created(v any) { c.JSON(http.StatusCreated, v) }

// Message sends {"message": msg} with the given status.
func (c *Context) Message(code int, msg string) {
	c.status = code
	response.Message(c.W, code, msg)
}

// Deleted sends 200 {"message": "<entity> deleted"}.
func (c *Context) Deleted(entity string) {
	c.Message(http.StatusOK, entity+" deleted")
}

// statusCoder is implemented by errors that know their HTTP status.
type statusCoder interface {
	error
	HTTPStatus() int
}

// fieldErrorer is implemented by validation errors.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// Fail maps err to a response. Errors carrying an HTTP status in the 4xx
// range are reported with their own message, without any wrapping
// prefixes; anything else is logged and sent as a 500.
func (c *Context) Fail(err error) {
	var sc statusCoder
	if errors.As(err, &sc) && sc.HTTPStatus() >= 400 && sc.HTTPStatus() < 500 {
		var fe fieldErrorer
		if sc.HTTPStatus() == http.StatusBadRequest && errors.As(err, &fe) {
			c.status = http.StatusBadRequest
			response.ValidationError(c.W, sc.Error(), fe.FieldErrors())
			return
		}
		c.Message(sc.HTTPStatus(), sc.Error())
		return
	}

	c.Logger().Error("request failed",
		"method", c.R.Method,
		"path", c.R.URL.Path,
		"error", err,
	)
	c.Message(http.StatusInternalServerError, "Internal server error")
}

// WrittenStatus returns the HTTP status code that was written to the response,
// or 0 if no response has been written yet.
func (c *Context) WrittenStatus() int { return c.status }
