package wire

import (
	"hotel-loyalty/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	activityHandler *adaptor.ActivityHandler,
	auth, admin mw,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/rooms", roomHandler.GetRooms(false))
	r.Get("/api/rooms/{id}", roomHandler.GetRoom)
	r.Get("/api/activities", activityHandler.GetActivities(false))
	r.Get("/api/activities/{id}", activityHandler.GetActivity)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)

		r.Get("/", roomHandler.GetRooms(true))
		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})

	r.Route("/api/admin/activities", func(r chi.Router) {
		r.Use(auth)
		r.Use(admin)

		r.Get("/", activityHandler.GetActivities(true))
		r.Post("/", activityHandler.CreateActivity)
		r.Put("/{id}", activityHandler.UpdateActivity)
		r.Delete("/{id}", activityHandler.DeleteActivity)
	})
}
