// Package kernel builds the HTTP handler: global middleware, the /api
// routes and the operational endpoints.
package kernel

import (
	"context"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/shashiranjanraj/fooddash/app/models"
	"github.com/shashiranjanraj/fooddash/app/repositories"
	"github.com/shashiranjanraj/fooddash/app/routes"
	"github.com/shashiranjanraj/fooddash/app/services"
	"github.com/shashiranjanraj/fooddash/config"
	"github.com/shashiranjanraj/fooddash/pkg/cache"
	"github.com/shashiranjanraj/fooddash/pkg/event"
	"github.com/shashiranjanraj/fooddash/pkg/metrics"
	"github.com/shashiranjanraj/fooddash/pkg/middleware"
	"github.com/shashiranjanraj/fooddash/pkg/reqid"
	"github.com/shashiranjanraj/fooddash/pkg/response"
	"github.com/shashiranjanraj/fooddash/pkg/router"
)

// HTTPKernel owns the router for one Store.
type HTTPKernel struct {
	store  *repositories.Store
	router *router.Router
}

// NewHTTPKernel wires every route. A nil limiter disables rate limiting.
func NewHTTPKernel(store *repositories.Store, limiter cache.Limiter) *HTTPKernel {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics: outermost for accurate total latency
	//  2. Request ID: inject unique ID before anything logs
	//  3. Logger: per-request logger and access log
	//  4. Recovery: panics become a logged 500
	//  5. CORS: answers preflight before the limiter counts it
	//  6. Rate limiter: reject abusers early
	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.CORSFor(config.FrontendURL())))
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter))
	}
	r.Use(chimw.StripSlashes)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.NotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	k := &HTTPKernel{store: store, router: r}

	r.Get("/metrics", "metrics", metrics.Handler())
	r.Get("/health", "health", k.health)

	svc := services.New(store)
	observe(svc.Events)
	routes.RegisterAPI(r, svc)
	return k
}

// observe feeds domain events into the metrics registry.
func observe(bus *event.Bus) {
	bus.Listen(event.Any, func(_ context.Context, e event.Event) {
		metrics.DomainEvents.WithLabelValues(e.Name).Inc()
	})
	bus.Listen(services.OrderCreated, func(_ context.Context, e event.Event) {
		if o, ok := e.Payload.(models.Order); ok && o.TotalAmount > 0 {
			metrics.OrderRevenue.Add(o.TotalAmount)
		}
	})
}

func (k *HTTPKernel) Router() *router.Router { return k.router }

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

func (k *HTTPKernel) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := k.store.Ping(ctx); err != nil {
		response.JSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
			"driver": k.store.Driver(),
		})
		return
	}
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"driver": k.store.Driver(),
	})
}
