package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresPromotionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPromotionRepository(db *pgxpool.Pool) *PostgresPromotionRepository {
	return &PostgresPromotionRepository{
		db: db,
	}
}

const promotionColumns = `id, title, description, promo_code, discount_amount,
	discount_percentage, start_date, end_date, usage_limit, used_count, is_active,
	created_at, updated_at`

func (p *PostgresPromotionRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Promotion, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), ` + promotionColumns + `
		FROM promotions
		ORDER BY start_date DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	promotions := make([]domain.Promotion, 0)
	totalRecords := 0

	for rows.Next() {
		var promo domain.Promotion

		err := rows.Scan(
			&totalRecords,
			&promo.ID,
			&promo.Title,
			&promo.Description,
			&promo.PromoCode,
			&promo.DiscountAmount,
			&promo.DiscountPercentage,
			&promo.StartDate,
			&promo.EndDate,
			&promo.UsageLimit,
			&promo.UsedCount,
			&promo.IsActive,
			&promo.CreatedAt,
			&promo.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		promotions = append(promotions, promo)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return promotions, metadata, nil
}

func (p *PostgresPromotionRepository) GetCurrent(ctx context.Context, now time.Time) ([]domain.Promotion, error) {
	query := `
		SELECT ` + promotionColumns + `
		FROM promotions
		WHERE is_active = true
		AND start_date <= $1 AND end_date >= $1
		AND (usage_limit = 0 OR used_count < usage_limit)
		ORDER BY start_date DESC
	`

	rows, err := p.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	promotions := make([]domain.Promotion, 0)

	for rows.Next() {
		var promo domain.Promotion

		err := rows.Scan(
			&promo.ID,
			&promo.Title,
			&promo.Description,
			&promo.PromoCode,
			&promo.DiscountAmount,
			&promo.DiscountPercentage,
			&promo.StartDate,
			&promo.EndDate,
			&promo.UsageLimit,
			&promo.UsedCount,
			&promo.IsActive,
			&promo.CreatedAt,
			&promo.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		promotions = append(promotions, promo)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return promotions, nil
}

func (p *PostgresPromotionRepository) Create(ctx context.Context, promotion *domain.Promotion) error {
	query := `
		INSERT INTO promotions (title, description, promo_code, discount_amount,
			discount_percentage, start_date, end_date, usage_limit, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, used_count, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		promotion.Title,
		promotion.Description,
		promotion.PromoCode,
		promotion.DiscountAmount,
		promotion.DiscountPercentage,
		promotion.StartDate,
		promotion.EndDate,
		promotion.UsageLimit,
		promotion.IsActive,
	).Scan(&promotion.ID, &promotion.UsedCount, &promotion.CreatedAt, &promotion.UpdatedAt)
}

func (p *PostgresPromotionRepository) Update(ctx context.Context, promotion *domain.Promotion) error {
	query := `
		UPDATE promotions
		SET title = $1, description = $2, promo_code = $3, discount_amount = $4,
			discount_percentage = $5, start_date = $6, end_date = $7,
			usage_limit = $8, is_active = $9, updated_at = now()
		WHERE id = $10
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		promotion.Title,
		promotion.Description,
		promotion.PromoCode,
		promotion.DiscountAmount,
		promotion.DiscountPercentage,
		promotion.StartDate,
		promotion.EndDate,
		promotion.UsageLimit,
		promotion.IsActive,
		promotion.ID,
	).Scan(&promotion.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresPromotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := p.db.Exec(ctx, `DELETE FROM promotions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
