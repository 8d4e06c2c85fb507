package wire

import (
	"hotel-loyalty/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, auth mw) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Use(auth)

		r.Post("/", bookingHandler.CreateBooking)
		r.Get("/", bookingHandler.GetUserBookings)
		r.Get("/{id}", bookingHandler.GetBooking)
		r.Post("/{id}/cancel", bookingHandler.CancelBooking)
		r.Post("/{id}/pay", bookingHandler.PayBooking)
	})
}
