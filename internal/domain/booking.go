package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCancelled BookingStatus = "cancelled"
)

const (
	SeatRows = 5
	SeatCols = 5
)

// ShowtimeTokens is the fixed set of bookable times of day. A showtime is
// always the current calendar date combined with one of these tokens, so
// tickets can only be sold for the same day. This is a product constraint,
// not an oversight.
var ShowtimeTokens = []string{"10:00", "14:00", "18:00", "21:00"}

type Booking struct {
	ID          uuid.UUID
	UserID      int
	MovieID     int
	SeatNumber  string
	ShowTime    time.Time
	Language    string
	Status      BookingStatus
	CreatedAt   time.Time
	CancelledAt *time.Time
}

// BookingSummary is a Booking joined with the catalog fields the booking list
// needs for rendering.
type BookingSummary struct {
	Booking
	MovieTitle     string
	MoviePosterUrl string
}

func ValidShowtimeToken(token string) bool {
	for _, t := range ShowtimeTokens {
		if t == token {
			return true
		}
	}

	return false
}

// ResolveShowTime combines today's date with a showtime token.
func ResolveShowTime(token string, now time.Time) (time.Time, error) {
	if !ValidShowtimeToken(token) {
		return time.Time{}, fmt.Errorf("invalid showtime token: %q", token)
	}

	t, err := time.Parse("15:04", token)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

// ValidSeatNumber reports whether s is a token of the fixed seat grid,
// a row letter A-E followed by a column number 1-5.
func ValidSeatNumber(s string) bool {
	if len(s) != 2 {
		return false
	}

	row := s[0] - 'A'
	col := s[1] - '1'

	return row < SeatRows && col < SeatCols
}

// SeatNumbers returns every token of the seat grid in row-major order.
func SeatNumbers() []string {
	seats := make([]string, 0, SeatRows*SeatCols)

	for row := range SeatRows {
		for col := range SeatCols {
			seats = append(seats, fmt.Sprintf("%c%d", 'A'+row, col+1))
		}
	}

	return seats
}

// TotalPrice is the informational total shown at checkout, unit price times
// seat count. It is not validated against anything server-side.
func TotalPrice(unitPrice decimal.Decimal, seatCount int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(seatCount)))
}

type BookingRepository interface {
	// CreateBatch inserts one booking per seat in a single transaction. The
	// whole batch commits or none of it does. A seat already held by an
	// active booking for the same movie and showtime fails the batch with
	// ErrSeatAlreadyBooked.
	CreateBatch(ctx context.Context, bookings []*Booking) error

	// GetActiveSeats returns the seat numbers of every active booking for
	// the given movie and showtime, across all users.
	GetActiveSeats(ctx context.Context, movieID int, showTime time.Time) ([]string, error)

	GetByUserId(ctx context.Context, userID int, pagination Pagination) ([]BookingSummary, *Metadata, error)

	// GetLatestByUserAndMovie returns the most recently created booking for
	// the pairing regardless of status, or ErrRecordNotFound.
	GetLatestByUserAndMovie(ctx context.Context, userID, movieID int) (*BookingSummary, error)

	// Cancel transitions an active booking owned by userID to cancelled and
	// stamps the cancellation time. Returns ErrRecordNotFound if no booking
	// with that id belongs to the user, ErrAlreadyCancelled if it exists but
	// is not active.
	Cancel(ctx context.Context, bookingID uuid.UUID, userID int) error

	// UpdateStatus is the back-office variant: it may cancel or reactivate
	// any booking regardless of owner. Reactivation is subject to the same
	// seat uniqueness guarantee as creation.
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status BookingStatus) error
}
