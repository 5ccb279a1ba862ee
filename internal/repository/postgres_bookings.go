package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) CreateBatch(ctx context.Context, bookings []*domain.Booking) error {
	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO bookings (user_id, movie_id, seat_number, show_time, language, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at
		`

		for _, booking := range bookings {
			err := tx.QueryRow(
				ctx,
				query,
				booking.UserID,
				booking.MovieID,
				booking.SeatNumber,
				booking.ShowTime,
				booking.Language,
				booking.Status,
			).Scan(&booking.ID, &booking.CreatedAt)

			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatAlreadyBooked
		}

		return err
	}

	return nil
}

func (p *PostgresBookingRepository) GetActiveSeats(
	ctx context.Context,
	movieID int,
	showTime time.Time) ([]string, error) {

	query := `
		SELECT seat_number
		FROM bookings
		WHERE movie_id = $1 AND show_time = $2 AND status = 'active'
	`

	rows, err := p.db.Query(ctx, query, movieID, showTime)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	seats := make([]string, 0)

	for rows.Next() {
		var seat string

		err = rows.Scan(&seat)
		if err != nil {
			return nil, err
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return seats, nil
}

func (p *PostgresBookingRepository) GetByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.BookingSummary, *domain.Metadata, error) {

	query := `
		SELECT
			COUNT(*) OVER(),
			b.id,
			b.user_id,
			b.movie_id,
			b.seat_number,
			b.show_time,
			b.language,
			b.status,
			b.created_at,
			b.cancelled_at,
			COALESCE(m.title, ''),
			COALESCE(m.poster_url, '')
		FROM bookings b
		LEFT JOIN movies m ON b.movie_id = m.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	bookings := make([]domain.BookingSummary, 0)
	totalRecords := 0

	for rows.Next() {
		var booking domain.BookingSummary

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.UserID,
			&booking.MovieID,
			&booking.SeatNumber,
			&booking.ShowTime,
			&booking.Language,
			&booking.Status,
			&booking.CreatedAt,
			&booking.CancelledAt,
			&booking.MovieTitle,
			&booking.MoviePosterUrl,
		)
		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}

func (p *PostgresBookingRepository) GetLatestByUserAndMovie(
	ctx context.Context,
	userID,
	movieID int) (*domain.BookingSummary, error) {

	query := `
		SELECT
			b.id,
			b.user_id,
			b.movie_id,
			b.seat_number,
			b.show_time,
			b.language,
			b.status,
			b.created_at,
			b.cancelled_at,
			COALESCE(m.title, ''),
			COALESCE(m.poster_url, '')
		FROM bookings b
		LEFT JOIN movies m ON b.movie_id = m.id
		WHERE b.user_id = $1 AND b.movie_id = $2
		ORDER BY b.created_at DESC
		LIMIT 1
	`

	var booking domain.BookingSummary

	err := p.db.QueryRow(ctx, query, userID, movieID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.MovieID,
		&booking.SeatNumber,
		&booking.ShowTime,
		&booking.Language,
		&booking.Status,
		&booking.CreatedAt,
		&booking.CancelledAt,
		&booking.MovieTitle,
		&booking.MoviePosterUrl,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) Cancel(ctx context.Context, bookingID uuid.UUID, userID int) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = now()
		WHERE id = $1 AND user_id = $2 AND status = 'active'
	`

	result, err := p.db.Exec(ctx, query, bookingID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	// Nothing was updated, find out why. The second read keeps cancelled_at
	// from being re-stamped on repeat cancels.
	var status domain.BookingStatus

	err = p.db.QueryRow(
		ctx,
		`SELECT status FROM bookings WHERE id = $1 AND user_id = $2`,
		bookingID,
		userID,
	).Scan(&status)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return domain.ErrAlreadyCancelled
}

func (p *PostgresBookingRepository) UpdateStatus(
	ctx context.Context,
	bookingID uuid.UUID,
	status domain.BookingStatus) error {

	var query string

	switch status {
	case domain.BookingStatusCancelled:
		query = `
			UPDATE bookings
			SET status = 'cancelled', cancelled_at = now()
			WHERE id = $1 AND status = 'active'
		`
	case domain.BookingStatusActive:
		query = `
			UPDATE bookings
			SET status = 'active', cancelled_at = NULL
			WHERE id = $1 AND status = 'cancelled'
		`
	default:
		return domain.ErrEditConflict
	}

	result, err := p.db.Exec(ctx, query, bookingID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrSeatAlreadyBooked
		}

		return err
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	var exists bool

	err = p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, bookingID).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrRecordNotFound
	}

	return domain.ErrEditConflict
}

func runInTx(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	var txOptions pgx.TxOptions

	tx, err := db.BeginTx(ctx, txOptions)
	if err != nil {
		return err
	}

	err = fn(tx)
	if err == nil {
		return tx.Commit(ctx)
	}

	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		return errors.Join(err, rollbackErr)
	}

	return err
}
