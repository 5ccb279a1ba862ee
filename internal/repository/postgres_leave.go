package repository

import (
	"context"

	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresLeaveRequestRepository struct {
	db *pgxpool.Pool
}

func NewPostgresLeaveRequestRepository(db *pgxpool.Pool) *PostgresLeaveRequestRepository {
	return &PostgresLeaveRequestRepository{
		db: db,
	}
}

func (p *PostgresLeaveRequestRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.LeaveRequest, *domain.Metadata, error) {

	query := `
		SELECT COUNT(*) OVER(), id, staff_id, leave_type, start_date, end_date,
			days_requested, reason, status, approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	requests := make([]domain.LeaveRequest, 0)
	totalRecords := 0

	for rows.Next() {
		var req domain.LeaveRequest

		err := rows.Scan(
			&totalRecords,
			&req.ID,
			&req.StaffID,
			&req.LeaveType,
			&req.StartDate,
			&req.EndDate,
			&req.DaysRequested,
			&req.Reason,
			&req.Status,
			&req.ApprovedBy,
			&req.ApprovedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return requests, metadata, nil
}

func (p *PostgresLeaveRequestRepository) GetByStaffId(
	ctx context.Context,
	staffID uuid.UUID) ([]domain.LeaveRequest, error) {

	query := `
		SELECT id, staff_id, leave_type, start_date, end_date, days_requested,
			reason, status, approved_by, approved_at, created_at, updated_at
		FROM leave_requests
		WHERE staff_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.db.Query(ctx, query, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]domain.LeaveRequest, 0)

	for rows.Next() {
		var req domain.LeaveRequest

		err := rows.Scan(
			&req.ID,
			&req.StaffID,
			&req.LeaveType,
			&req.StartDate,
			&req.EndDate,
			&req.DaysRequested,
			&req.Reason,
			&req.Status,
			&req.ApprovedBy,
			&req.ApprovedAt,
			&req.CreatedAt,
			&req.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

func (p *PostgresLeaveRequestRepository) Create(ctx context.Context, req *domain.LeaveRequest) error {
	query := `
		INSERT INTO leave_requests (staff_id, leave_type, start_date, end_date, days_requested, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at, updated_at
	`

	return p.db.QueryRow(
		ctx,
		query,
		req.StaffID,
		req.LeaveType,
		req.StartDate,
		req.EndDate,
		req.DaysRequested,
		req.Reason,
	).Scan(&req.ID, &req.Status, &req.CreatedAt, &req.UpdatedAt)
}

func (p *PostgresLeaveRequestRepository) Resolve(
	ctx context.Context,
	id uuid.UUID,
	status domain.LeaveStatus,
	approvedBy uuid.UUID) error {

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = now(), updated_at = now()
		WHERE id = $3 AND status = 'pending'
	`

	result, err := p.db.Exec(ctx, query, status, approvedBy, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	var exists bool

	err = p.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM leave_requests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrRecordNotFound
	}

	return domain.ErrEditConflict
}
