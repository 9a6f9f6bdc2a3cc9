package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/itchan-dev/threadboard/backend/internal/setup"
	"github.com/itchan-dev/threadboard/shared/api"
	"github.com/itchan-dev/threadboard/shared/logger"
	mw "github.com/itchan-dev/threadboard/shared/middleware"
	"github.com/itchan-dev/threadboard/shared/middleware/metrics"
	"github.com/itchan-dev/threadboard/shared/utils"
)

// New creates the chi router with all routes and middleware.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(logger.Log))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.Cors.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureCookies, mw.APIContentSecurityPolicy))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, api.ErrorResponse{Error: "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, api.ErrorResponse{Error: "Method not allowed"})
	})

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/threads/{board}", h.GetThreads)
	r.Post("/threads/{board}", h.CreateThread)
	r.Put("/threads/{board}", h.ReportThread)
	r.Delete("/threads/{board}", h.DeleteThread)

	r.Get("/replies/{board}", h.GetReplies)
	r.Post("/replies/{board}", h.CreateReply)
	r.Put("/replies/{board}", h.ReportReply)
	r.Delete("/replies/{board}", h.DeleteReply)

	return r
}
