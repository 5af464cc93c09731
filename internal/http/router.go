package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/tranqh/moneypot/internal/http/dashboard"
	"github.com/tranqh/moneypot/internal/http/debt"
	"github.com/tranqh/moneypot/internal/http/export"
	"github.com/tranqh/moneypot/internal/http/fund"
	"github.com/tranqh/moneypot/internal/http/importcsv"
	"github.com/tranqh/moneypot/internal/http/transaction"
)

func New(
	transactionsV1 *transaction.Handler,
	debtsV1 *debt.Handler,
	fundsV1 *fund.Handler,
	dashboardV1 *dashboard.Handler,
	importV1 *importcsv.Handler,
	exportV1 *export.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/transactions", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			transactionsV1.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debtsV1.Routes(r)
		})

		r.Route("/funds", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			fundsV1.Routes(r)
		})

		r.Route("/goals", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			fundsV1.GoalRoutes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/import", importV1.Routes)

		r.Route("/export", exportV1.Routes)
	})

	return router
}
