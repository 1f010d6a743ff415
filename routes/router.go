package routes

import (
	"net/http"

	"github.com/IrumShehryar/Restaurant-Website/apperrors"
	controller "github.com/IrumShehryar/Restaurant-Website/controllers"
	"github.com/IrumShehryar/Restaurant-Website/helper"
	middleware "github.com/IrumShehryar/Restaurant-Website/middlewares"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// Controllers bundles everything the router dispatches to.
type Controllers struct {
	Menu        *controller.MenuController
	Submissions *controller.SubmissionController
	Pages       *controller.PageController
	Health      *controller.HealthController
}

// NewRouter wires pages, the JSON API under /api/v1 and the operational
// endpoints. Only the API is rate limited.
func NewRouter(c Controllers, limiter *rate.Limiter) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.Recover, middleware.Logging, middleware.Metrics)

	router.HandleFunc("/health", c.Health.Health).Methods(http.MethodGet)
	router.HandleFunc("/ready", c.Health.Ready).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.RateLimit(limiter))
	MenuRoutes(api, c.Menu)
	ReservationRoutes(api, c.Submissions)
	OrderRoutes(api, c.Submissions)
	ContactRoutes(api, c.Submissions)
	api.NotFoundHandler = withMiddleware(http.HandlerFunc(apiNotFound))
	api.MethodNotAllowedHandler = withMiddleware(http.HandlerFunc(apiMethodNotAllowed))

	PageRoutes(router, c.Pages)
	router.NotFoundHandler = withMiddleware(http.HandlerFunc(c.Pages.NotFound))

	return router
}

// withMiddleware applies the router-level middleware to handlers that mux
// invokes without a matched route.
func withMiddleware(h http.Handler) http.Handler {
	return middleware.RequestID(middleware.Recover(middleware.Logging(middleware.Metrics(h))))
}

func apiNotFound(w http.ResponseWriter, r *http.Request) {
	helper.WriteError(w, r, apperrors.ErrCodeNotFound, "resource not found", map[string]any{"path": r.URL.Path})
}

func apiMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	helper.WriteError(w, r, apperrors.ErrCodeMethodNotAllowed, "method not allowed",
		map[string]any{"method": r.Method, "path": r.URL.Path})
}
