package repository

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTokenRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTokenRepository(db *pgxpool.Pool) *PostgresTokenRepository {
	return &PostgresTokenRepository{
		db: db,
	}
}

func (p *PostgresTokenRepository) Create(ctx context.Context, token *domain.Token) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		return insertToken(ctx, tx, token)
	})
}

func (p *PostgresTokenRepository) DeleteAllForUser(ctx context.Context, tokenScope string, userID int) error {
	_, err := p.db.Exec(
		ctx,
		`DELETE FROM tokens WHERE scope = $1 AND user_id = $2`,
		tokenScope,
		userID,
	)

	return err
}

func insertToken(ctx context.Context, tx pgx.Tx, token *domain.Token) error {
	query := `
		INSERT INTO tokens (hash, user_id, expiry, scope)
		VALUES ($1, $2, $3, $4)
	`

	_, err := tx.Exec(ctx, query, token.Hash, token.UserId, token.Expiry, token.Scope)

	return err
}
