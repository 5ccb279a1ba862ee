package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateBookingHandler turns a seat selection into persisted bookings.
//
// Showtimes are always today's date combined with one of the fixed time
// tokens; there is no future-date selection. The availability check before
// the insert is advisory and fail-closed: its result makes for a precise
// error message, but the unique index on active (movie, showtime, seat)
// rows is what actually prevents double booking.
func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), input.MovieId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if !movie.IsActive {
		app.notFoundResponseWithErr(w, r, fmt.Errorf("movie %d is not open for booking", movie.ID))
		return
	}

	showTime, err := domain.ResolveShowTime(input.ShowTime, time.Now())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	conflicts, err := app.checkSeatConflicts(r.Context(), movie.ID, showTime, input.Seats)
	if err != nil {
		// Fail closed: an unanswered availability check means no write.
		app.serverErrorResponse(w, r, err)
		return
	}

	if len(conflicts) > 0 {
		logger.Warn("booking conflict detected before write", "movie_id", movie.ID, "seats", conflicts)
		app.editConflictResponseWithErr(
			w,
			r,
			fmt.Errorf("seat(s) %s are already booked for this showtime", strings.Join(conflicts, ", ")),
		)
		return
	}

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	totalPrice := domain.TotalPrice(app.ticketPrice, len(input.Seats))

	receipt, err := app.paymentProvider.Authorize(r.Context(), user, totalPrice)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPaymentDeclined):
			app.badRequestResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	bookings := make([]*domain.Booking, len(input.Seats))
	for i, seat := range input.Seats {
		bookings[i] = &domain.Booking{
			UserID:     userId,
			MovieID:    movie.ID,
			SeatNumber: seat,
			ShowTime:   showTime,
			Language:   input.Language,
			Status:     domain.BookingStatusActive,
		}
	}

	err = app.bookingRepo.CreateBatch(r.Context(), bookings)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatAlreadyBooked):
			// Lost the race after a clean advisory check. The store is the
			// arbiter, nothing was written.
			logger.Warn("booking conflict detected by the store", "movie_id", movie.ID)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking confirmed",
		"movie_id", movie.ID,
		"seats", len(bookings),
		"payment_id", receipt.ID,
	)

	app.sendBookingConfirmation(r, user, movie, input.Seats, showTime, totalPrice.StringFixed(2))

	resp := api.CreateBookingResponse{
		Bookings:   toApiBookings(bookings),
		TotalPrice: totalPrice,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkSeatConflicts returns the requested seats that already have an active
// booking for the movie and showtime. Read-only.
func (app *Application) checkSeatConflicts(
	ctx context.Context,
	movieID int,
	showTime time.Time,
	seats []string) ([]string, error) {

	takenSeats, err := app.bookingRepo.GetActiveSeats(ctx, movieID, showTime)
	if err != nil {
		return nil, err
	}

	conflicts := make([]string, 0)

	for _, seat := range seats {
		if slices.Contains(takenSeats, seat) {
			conflicts = append(conflicts, seat)
		}
	}

	return conflicts, nil
}

func (app *Application) sendBookingConfirmation(
	r *http.Request,
	user *domain.User,
	movie *domain.Movie,
	seats []string,
	showTime time.Time,
	totalPrice string) {

	go func(ctx context.Context) {
		gLogger := app.contextGetLogger(r.WithContext(ctx))

		defer func() {
			if err := recover(); err != nil {
				gLogger.Error("panic occurred during sending booking confirmation mail", "panic", err)
			}
		}()

		data := map[string]any{
			"movieTitle": movie.Title,
			"seats":      strings.Join(seats, ", "),
			"showTime":   showTime.Format(time.RFC1123),
			"totalPrice": totalPrice,
		}

		err := app.mailer.Send(user.Email, "booking_confirmation.tmpl", data)
		if err != nil {
			gLogger.Error("failed to send booking confirmation email", "error", err)
		}
	}(r.Context())
}

// GetSeatAvailability reports which grid seats are taken for a movie and
// showtime, for rendering the seat picker.
func (app *Application) GetSeatAvailability(w http.ResponseWriter, r *http.Request) {
	movieId, err := readIntParam(r, "movieId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	params := api.GetAvailabilityParams{
		ShowTime: r.URL.Query().Get("showTime"),
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	showTime, err := domain.ResolveShowTime(params.ShowTime, time.Now())
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	takenSeats, err := app.bookingRepo.GetActiveSeats(r.Context(), movieId, showTime)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	availableSeats := make([]string, 0)
	for _, seat := range domain.SeatNumbers() {
		if !slices.Contains(takenSeats, seat) {
			availableSeats = append(availableSeats, seat)
		}
	}

	resp := api.AvailabilityResponse{
		MovieId:        movieId,
		ShowTime:       showTime,
		TakenSeats:     takenSeats,
		AvailableSeats: availableSeats,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookingsOfUserHandler lists the caller's bookings, most recent first.
// With a movieId query parameter it returns at most the single most recent
// booking for that movie, regardless of status.
func (app *Application) GetBookingsOfUserHandler(w http.ResponseWriter, r *http.Request) {
	params, err := parseGetBookingsParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	if params.MovieId != nil {
		booking, err := app.bookingRepo.GetLatestByUserAndMovie(r.Context(), userId, *params.MovieId)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRecordNotFound):
				app.writeJSON(w, http.StatusOK, api.UserBookingsResponse{Bookings: []api.BookingSummary{}}, nil)
			default:
				app.serverErrorResponse(w, r, err)
			}

			return
		}

		resp := api.UserBookingsResponse{
			Bookings: []api.BookingSummary{toApiBookingSummary(*booking)},
		}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	bookings, metadata, err := app.bookingRepo.GetByUserId(r.Context(), userId, pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserBookingsResponse{
		Bookings: toApiBookingSummaries(bookings),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// CancelBookingHandler cancels a booking owned by the caller. Cancelling is
// terminal for users; repeating the call reports a conflict and the original
// cancellation time is kept.
func (app *Application) CancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	bookingId, err := readUUIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userId := app.contextGetUserId(r)

	err = app.bookingRepo.Cancel(r.Context(), bookingId, userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrAlreadyCancelled):
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UpdateBookingStatusHandler is the back-office variant: cancel or reactivate
// any booking regardless of owner. Reactivating is the only path back from
// cancelled to active.
func (app *Application) UpdateBookingStatusHandler(w http.ResponseWriter, r *http.Request) {
	bookingId, err := readUUIDParam(r, "bookingId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.UpdateBookingStatusRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	err = app.bookingRepo.UpdateStatus(r.Context(), bookingId, domain.BookingStatus(input.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatAlreadyBooked):
			app.editConflictResponseWithErr(w, r, err)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponseWithErr(w, r, fmt.Errorf("booking is already %s", input.Status))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseGetBookingsParams(r *http.Request) (api.GetBookingsOfUserParams, error) {
	var params api.GetBookingsOfUserParams

	page, err := readQueryInt(r, "page")
	if err != nil {
		return params, err
	}

	pageSize, err := readQueryInt(r, "pageSize")
	if err != nil {
		return params, err
	}

	movieId, err := readQueryInt(r, "movieId")
	if err != nil {
		return params, err
	}

	params.Page = page
	params.PageSize = pageSize
	params.MovieId = movieId

	return params, nil
}

func readUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s parameter", name)
	}

	return id, nil
}

func toApiBookings(bookings []*domain.Booking) []api.Booking {
	apiBookings := make([]api.Booking, len(bookings))

	for i, b := range bookings {
		apiBookings[i] = toApiBooking(*b)
	}

	return apiBookings
}

func toApiBooking(b domain.Booking) api.Booking {
	return api.Booking{
		Id:          b.ID.String(),
		MovieId:     b.MovieID,
		SeatNumber:  b.SeatNumber,
		ShowTime:    b.ShowTime,
		Language:    b.Language,
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		CancelledAt: b.CancelledAt,
	}
}

func toApiBookingSummaries(bookings []domain.BookingSummary) []api.BookingSummary {
	summaries := make([]api.BookingSummary, len(bookings))

	for i, b := range bookings {
		summaries[i] = toApiBookingSummary(b)
	}

	return summaries
}

func toApiBookingSummary(b domain.BookingSummary) api.BookingSummary {
	return api.BookingSummary{
		Booking:        toApiBooking(b.Booking),
		MovieTitle:     b.MovieTitle,
		MoviePosterUrl: b.MoviePosterUrl,
	}
}
