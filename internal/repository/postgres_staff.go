package repository

import (
	"context"
	"errors"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStaffRepository struct {
	db *pgxpool.Pool
}

func NewPostgresStaffRepository(db *pgxpool.Pool) *PostgresStaffRepository {
	return &PostgresStaffRepository{
		db: db,
	}
}

func (p *PostgresStaffRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Staff, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, name, email, position, department, phone,
			salary, hire_date, status, created_at, updated_at
		FROM staff
		ORDER BY name ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	staff := make([]domain.Staff, 0)
	totalRecords := 0

	for rows.Next() {
		var s domain.Staff

		err := rows.Scan(
			&totalRecords,
			&s.ID,
			&s.Name,
			&s.Email,
			&s.Position,
			&s.Department,
			&s.Phone,
			&s.Salary,
			&s.HireDate,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		staff = append(staff, s)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return staff, metadata, nil
}

func (p *PostgresStaffRepository) GetById(ctx context.Context, id uuid.UUID) (*domain.Staff, error) {
	query := `
		SELECT id, name, email, position, department, phone, salary, hire_date,
			status, created_at, updated_at
		FROM staff
		WHERE id = $1
	`

	var s domain.Staff

	err := p.db.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.Position,
		&s.Department,
		&s.Phone,
		&s.Salary,
		&s.HireDate,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &s, nil
}

func (p *PostgresStaffRepository) Create(ctx context.Context, staff *domain.Staff) error {
	query := `
		INSERT INTO staff (name, email, position, department, phone, salary, hire_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		staff.Name,
		staff.Email,
		staff.Position,
		staff.Department,
		staff.Phone,
		staff.Salary,
		staff.HireDate,
		staff.Status,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (p *PostgresStaffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	query := `
		UPDATE staff
		SET name = $1, email = $2, position = $3, department = $4, phone = $5,
			salary = $6, hire_date = $7, status = $8, updated_at = now()
		WHERE id = $9
		RETURNING updated_at
	`

	err := p.db.QueryRow(
		ctx,
		query,
		staff.Name,
		staff.Email,
		staff.Position,
		staff.Department,
		staff.Phone,
		staff.Salary,
		staff.HireDate,
		staff.Status,
		staff.ID,
	).Scan(&staff.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

func (p *PostgresStaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := p.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
