package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type StaffStatus string

const (
	StaffStatusActive   StaffStatus = "active"
	StaffStatusInactive StaffStatus = "inactive"
	StaffStatusOnLeave  StaffStatus = "on_leave"
)

type Staff struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Position   string
	Department string
	Phone      string
	Salary     decimal.Decimal
	HireDate   time.Time
	Status     StaffStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

type LeaveRequest struct {
	ID            uuid.UUID
	StaffID       uuid.UUID
	LeaveType     string
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested int
	Reason        string
	Status        LeaveStatus
	ApprovedBy    *uuid.UUID
	ApprovedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LeaveDays is the inclusive day count of a leave window.
func LeaveDays(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

type StaffRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]Staff, *Metadata, error)
	GetById(ctx context.Context, id uuid.UUID) (*Staff, error)
	Create(ctx context.Context, staff *Staff) error
	Update(ctx context.Context, staff *Staff) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type LeaveRequestRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]LeaveRequest, *Metadata, error)
	GetByStaffId(ctx context.Context, staffID uuid.UUID) ([]LeaveRequest, error)
	Create(ctx context.Context, req *LeaveRequest) error

	// Resolve moves a pending request to approved or rejected, stamping the
	// approver and approval time. A request that is not pending returns
	// ErrEditConflict.
	Resolve(ctx context.Context, id uuid.UUID, status LeaveStatus, approvedBy uuid.UUID) error
}
