// Package payment provides the payment provider used by the booking workflow.
// Payment in this product is simulated: the provider issues a receipt without
// contacting a gateway. The domain.PaymentProvider seam is where a real
// gateway integration would go.
package payment

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SimulatedProvider struct{}

func NewSimulatedProvider() *SimulatedProvider {
	return &SimulatedProvider{}
}

func (p *SimulatedProvider) Authorize(
	ctx context.Context,
	user *domain.User,
	amount decimal.Decimal) (*domain.PaymentReceipt, error) {

	if amount.IsNegative() {
		return nil, domain.ErrPaymentDeclined
	}

	return &domain.PaymentReceipt{
		ID:     uuid.NewString(),
		Amount: amount,
	}, nil
}
