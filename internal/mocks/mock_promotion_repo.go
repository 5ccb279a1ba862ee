package mocks

import (
	"context"
	"time"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
)

type MockPromotionRepo struct {
	domain.PromotionRepository
	GetAllFunc     func(ctx context.Context, pagination domain.Pagination) ([]domain.Promotion, *domain.Metadata, error)
	GetCurrentFunc func(ctx context.Context, now time.Time) ([]domain.Promotion, error)
	CreateFunc     func(ctx context.Context, promotion *domain.Promotion) error
	UpdateFunc     func(ctx context.Context, promotion *domain.Promotion) error
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
}

func (m *MockPromotionRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]domain.Promotion, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockPromotionRepo) GetCurrent(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	return m.GetCurrentFunc(ctx, now)
}

func (m *MockPromotionRepo) Create(ctx context.Context, promotion *domain.Promotion) error {
	return m.CreateFunc(ctx, promotion)
}

func (m *MockPromotionRepo) Update(ctx context.Context, promotion *domain.Promotion) error {
	return m.UpdateFunc(ctx, promotion)
}

func (m *MockPromotionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.DeleteFunc(ctx, id)
}
