package mocks

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
)

type MockStaffRepo struct {
	domain.StaffRepository
	GetAllFunc  func(ctx context.Context, pagination domain.Pagination) ([]domain.Staff, *domain.Metadata, error)
	GetByIdFunc func(ctx context.Context, id uuid.UUID) (*domain.Staff, error)
	CreateFunc  func(ctx context.Context, staff *domain.Staff) error
	UpdateFunc  func(ctx context.Context, staff *domain.Staff) error
	DeleteFunc  func(ctx context.Context, id uuid.UUID) error
}

func (m *MockStaffRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Staff, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockStaffRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockStaffRepo) Create(ctx context.Context, staff *domain.Staff) error {
	return m.CreateFunc(ctx, staff)
}

func (m *MockStaffRepo) Update(ctx context.Context, staff *domain.Staff) error {
	return m.UpdateFunc(ctx, staff)
}

func (m *MockStaffRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
