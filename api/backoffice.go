package api

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type PaginationParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}

type StaffRequest struct {
	Name       string          `json:"name" validate:"required,max=100"`
	Email      string          `json:"email" validate:"required,email"`
	Position   string          `json:"position" validate:"required,max=100"`
	Department string          `json:"department" validate:"max=100"`
	Phone      string          `json:"phone" validate:"max=30"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   types.Date      `json:"hireDate" validate:"required"`
	Status     string          `json:"status" validate:"omitempty,oneof=active inactive on_leave"`
}

type StaffResponse struct {
	Id         string          `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Position   string          `json:"position"`
	Department string          `json:"department"`
	Phone      string          `json:"phone"`
	Salary     decimal.Decimal `json:"salary"`
	HireDate   types.Date      `json:"hireDate"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type StaffListResponse struct {
	Staff    []StaffResponse `json:"staff"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type CreateLeaveRequestRequest struct {
	StaffId   string     `json:"staffId" validate:"required,uuid4"`
	LeaveType string     `json:"leaveType" validate:"required,oneof=annual sick unpaid parental"`
	StartDate types.Date `json:"startDate" validate:"required"`
	EndDate   types.Date `json:"endDate" validate:"required"`
	Reason    string     `json:"reason" validate:"max=500"`
}

type ResolveLeaveRequestRequest struct {
	Status     string `json:"status" validate:"required,oneof=approved rejected"`
	ApprovedBy string `json:"approvedBy" validate:"required,uuid4"`
}

type LeaveRequestResponse struct {
	Id            string     `json:"id"`
	StaffId       string     `json:"staffId"`
	LeaveType     string     `json:"leaveType"`
	StartDate     types.Date `json:"startDate"`
	EndDate       types.Date `json:"endDate"`
	DaysRequested int        `json:"daysRequested"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	ApprovedBy    *string    `json:"approvedBy,omitempty"`
	ApprovedAt    *time.Time `json:"approvedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type LeaveRequestListResponse struct {
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
	Metadata      *Metadata              `json:"metadata,omitempty"`
}

type PromotionRequest struct {
	Title              string          `json:"title" validate:"required,max=200"`
	Description        string          `json:"description" validate:"max=2000"`
	PromoCode          string          `json:"promoCode" validate:"max=50"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	DiscountPercentage int             `json:"discountPercentage" validate:"min=0,max=100"`
	StartDate          types.Date      `json:"startDate" validate:"required"`
	EndDate            types.Date      `json:"endDate" validate:"required"`
	UsageLimit         int             `json:"usageLimit" validate:"min=0"`
	IsActive           bool            `json:"isActive"`
}

type PromotionResponse struct {
	Id                 string          `json:"id"`
	Title              string          `json:"title"`
	Description        string          `json:"description"`
	PromoCode          string          `json:"promoCode"`
	DiscountAmount     decimal.Decimal `json:"discountAmount"`
	DiscountPercentage int             `json:"discountPercentage"`
	StartDate          types.Date      `json:"startDate"`
	EndDate            types.Date      `json:"endDate"`
	UsageLimit         int             `json:"usageLimit"`
	UsedCount          int             `json:"usedCount"`
	IsActive           bool            `json:"isActive"`
}

type PromotionListResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	Metadata   *Metadata           `json:"metadata,omitempty"`
}
