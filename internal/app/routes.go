package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("cinetick-api", otelchi.WithChiRoutes(r)))
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.RegisterUser)
	r.Put("/users/activated", app.ActivateUser)
	r.Post("/sessions", app.Login)
	r.Delete("/sessions", app.Logout)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{movieId}", app.GetMovie)
	r.Get("/movies/{movieId}/availability", app.GetSeatAvailability)

	r.Get("/promotions", app.GetCurrentPromotions)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/me", app.GetCurrentUser)

		r.Post("/bookings", app.CreateBookingHandler)
		r.Get("/users/me/bookings", app.GetBookingsOfUserHandler)
		r.Delete("/users/me/bookings/{bookingId}", app.CancelBookingHandler)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(app.requireAuthentication)
		r.Use(app.requireAdmin)

		r.Post("/movies", app.CreateMovie)
		r.Patch("/movies/{movieId}", app.UpdateMovie)
		r.Delete("/movies/{movieId}", app.DeleteMovie)

		r.Patch("/bookings/{bookingId}/status", app.UpdateBookingStatusHandler)

		r.Get("/staff", app.GetStaffList)
		r.Post("/staff", app.CreateStaff)
		r.Patch("/staff/{staffId}", app.UpdateStaff)
		r.Delete("/staff/{staffId}", app.DeleteStaff)

		r.Get("/leave-requests", app.GetLeaveRequests)
		r.Post("/leave-requests", app.CreateLeaveRequest)
		r.Patch("/leave-requests/{requestId}", app.ResolveLeaveRequest)

		r.Get("/promotions", app.GetPromotions)
		r.Post("/promotions", app.CreatePromotion)
		r.Patch("/promotions/{promotionId}", app.UpdatePromotion)
		r.Delete("/promotions/{promotionId}", app.DeletePromotion)
	})

	return r
}
