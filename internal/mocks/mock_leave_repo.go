package mocks

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
)

type MockLeaveRepo struct {
	domain.LeaveRequestRepository
	GetAllFunc       func(ctx context.Context, pagination domain.Pagination) ([]domain.LeaveRequest, *domain.Metadata, error)
	GetByStaffIdFunc func(ctx context.Context, staffID uuid.UUID) ([]domain.LeaveRequest, error)
	CreateFunc       func(ctx context.Context, req *domain.LeaveRequest) error
	ResolveFunc      func(ctx context.Context, id uuid.UUID, status domain.LeaveStatus, approvedBy uuid.UUID) error
}

func (m *MockLeaveRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.LeaveRequest, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockLeaveRepo) GetByStaffId(ctx context.Context, staffID uuid.UUID) ([]domain.LeaveRequest, error) {
	return m.GetByStaffIdFunc(ctx, staffID)
}

func (m *MockLeaveRepo) Create(ctx context.Context, req *domain.LeaveRequest) error {
	return m.CreateFunc(ctx, req)
}

func (m *MockLeaveRepo) Resolve(ctx context.Context, id uuid.UUID, status domain.LeaveStatus, approvedBy uuid.UUID) error {
	return m.ResolveFunc(ctx, id, status, approvedBy)
}
