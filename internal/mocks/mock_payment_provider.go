package mocks

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/shopspring/decimal"
)

type MockPaymentProvider struct {
	domain.PaymentProvider
	AuthorizeFunc func(ctx context.Context, user *domain.User, amount decimal.Decimal) (*domain.PaymentReceipt, error)
}

func (m *MockPaymentProvider) Authorize(ctx context.Context, user *domain.User, amount decimal.Decimal) (*domain.PaymentReceipt, error) {
	return m.AuthorizeFunc(ctx, user, amount)
}
