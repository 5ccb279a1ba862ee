package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Promotion struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	PromoCode          string
	DiscountAmount     decimal.Decimal
	DiscountPercentage int
	StartDate          time.Time
	EndDate            time.Time
	UsageLimit         int
	UsedCount          int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Current reports whether the promotion can be offered at the given instant.
func (p Promotion) Current(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate) &&
		(p.UsageLimit == 0 || p.UsedCount < p.UsageLimit)
}

type PromotionRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Promotion, *Metadata, error)
	GetCurrent(ctx context.Context, now time.Time) ([]Promotion, error)
	Create(ctx context.Context, promotion *Promotion) error
	Update(ctx context.Context, promotion *Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
}
