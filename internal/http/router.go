package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/jmcortinhal/centavo/internal/http/health"
	"github.com/jmcortinhal/centavo/internal/http/importcsv"
	"github.com/jmcortinhal/centavo/internal/http/summary"
	"github.com/jmcortinhal/centavo/internal/http/transaction"
)

func New(
	transactions *transaction.Handler,
	summaries *summary.Handler,
	imports *importcsv.Handler,
	healthH *health.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The API serves a browser frontend from arbitrary origins.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	router.Get("/", healthH.Root)
	router.Get("/test", healthH.Status)

	router.Route("/api", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactions.Routes(r)
		})

		r.Route("/summary", func(r chi.Router) {
			summaries.Routes(r)
		})

		r.Route("/import", imports.Routes)
	})

	return router
}
