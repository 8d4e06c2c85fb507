package wire

import (
	"hotel-loyalty/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLoyalty(r chi.Router, loyaltyHandler *adaptor.LoyaltyHandler, auth, admin mw) {
	r.Get("/api/loyalty/levels", loyaltyHandler.GetLevels)

	r.Group(func(r chi.Router) {
		r.Use(auth)

		r.Post("/api/loyalty/transaction", loyaltyHandler.AddPointsTransaction)
		r.Get("/api/loyalty/status", loyaltyHandler.GetStatus)
		r.Get("/api/loyalty/history", loyaltyHandler.GetHistory)
	})

	r.Route("/api/admin/loyalty", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)

		r.Post("/levels", loyaltyHandler.CreateLevel)
	})
}
