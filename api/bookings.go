package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	MovieId  int      `json:"movieId" validate:"required,min=1"`
	Seats    []string `json:"seats" validate:"required,min=1,max=25,unique,dive,seat"`
	ShowTime string   `json:"showTime" validate:"required,showtime"`
	Language string   `json:"language" validate:"required,max=50"`
}

type Booking struct {
	Id          string     `json:"id"`
	MovieId     int        `json:"movieId"`
	SeatNumber  string     `json:"seatNumber"`
	ShowTime    time.Time  `json:"showTime"`
	Language    string     `json:"language"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type CreateBookingResponse struct {
	Bookings   []Booking       `json:"bookings"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

type BookingSummary struct {
	Booking
	MovieTitle     string `json:"movieTitle"`
	MoviePosterUrl string `json:"moviePosterUrl"`
}

type GetBookingsOfUserParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
	MovieId  *int `validate:"omitempty,min=1"`
}

type UserBookingsResponse struct {
	Bookings []BookingSummary `json:"bookings"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type GetAvailabilityParams struct {
	ShowTime string `validate:"required,showtime"`
}

type AvailabilityResponse struct {
	MovieId        int       `json:"movieId"`
	ShowTime       time.Time `json:"showTime"`
	TakenSeats     []string  `json:"takenSeats"`
	AvailableSeats []string  `json:"availableSeats"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active cancelled"`
}
