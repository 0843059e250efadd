package api

import (
	_ "aevonx/docs"
	"aevonx/internal/handler"
	"aevonx/internal/proxy"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(
	exchangeHandler *handler.ExchangeHandler,
	contentHandler *handler.ContentHandler,
	authHandler *handler.AuthHandler,
	supportHandler *handler.SupportHandler,
	proxyHandler *proxy.Handler,
) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/exchange", func(r chi.Router) {
			r.Get("/routes", exchangeHandler.GetRoutes)
			r.Get("/currencies", exchangeHandler.GetCurrencies)
			r.Get("/destinations/{from}", exchangeHandler.GetDestinations)
			r.Post("/quote", exchangeHandler.ResolveQuote)
			r.Post("/quote/swap", exchangeHandler.SwapQuote)
			r.Post("/orders", exchangeHandler.CreateOrder)
			r.Get("/orders/{uid:[0-9]+}", exchangeHandler.GetOrder)
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/news", contentHandler.GetNews)
			r.Get("/reviews", contentHandler.GetReviews)
			r.Get("/faq", contentHandler.GetFAQ)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/register", authHandler.Register)
			r.Post("/logout", authHandler.Logout)
			r.Get("/session", authHandler.Session)
		})

		r.Post("/support/tickets", supportHandler.CreateTicket)
	})

	router.Mount("/api/proxy", proxyHandler.Routes())

	return router
}
