package mocks

import (
	"context"
	"time"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
)

type MockBookingRepo struct {
	domain.BookingRepository
	CreateBatchFunc             func(ctx context.Context, bookings []*domain.Booking) error
	GetActiveSeatsFunc          func(ctx context.Context, movieID int, showTime time.Time) ([]string, error)
	GetByUserIdFunc             func(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error)
	GetLatestByUserAndMovieFunc func(ctx context.Context, userID, movieID int) (*domain.BookingSummary, error)
	CancelFunc                  func(ctx context.Context, bookingID uuid.UUID, userID int) error
	UpdateStatusFunc            func(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
}

func (m *MockBookingRepo) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	return m.CreateBatchFunc(ctx, bookings)
}

func (m *MockBookingRepo) GetActiveSeats(ctx context.Context, movieID int, showTime time.Time) ([]string, error) {
	return m.GetActiveSeatsFunc(ctx, movieID, showTime)
}

func (m *MockBookingRepo) GetByUserId(ctx context.Context, userID int, pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {
	return m.GetByUserIdFunc(ctx, userID, pagination)
}

func (m *MockBookingRepo) GetLatestByUserAndMovie(ctx context.Context, userID, movieID int) (*domain.BookingSummary, error) {
	return m.GetLatestByUserAndMovieFunc(ctx, userID, movieID)
}

func (m *MockBookingRepo) Cancel(ctx context.Context, bookingID uuid.UUID, userID int) error {
	return m.CancelFunc(ctx, bookingID, userID)
}

func (m *MockBookingRepo) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	return m.UpdateStatusFunc(ctx, bookingID, status)
}
