package wire

import (
	"hotel-loyalty/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, auth, admin mw) {
	r.Group(func(r chi.Router) {
		r.Use(auth)
		r.Get("/api/user/profile", userHandler.GetProfile)
	})

	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)
		r.Get("/", userHandler.GetAllUsers)
	})
}
