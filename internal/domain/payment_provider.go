package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type PaymentReceipt struct {
	ID     string
	Amount decimal.Decimal
}

// PaymentProvider authorizes a charge before bookings are written. The
// shipped implementation simulates the gateway; the seam exists so a real
// one can be slotted in without touching the booking workflow.
type PaymentProvider interface {
	Authorize(ctx context.Context, user *User, amount decimal.Decimal) (*PaymentReceipt, error)
}
