package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

func (app *Application) GetStaffList(w http.ResponseWriter, r *http.Request) {
	params, pagination, err := parsePaginationParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	staff, metadata, err := app.staffRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.StaffListResponse{
		Staff:    toApiStaffList(staff),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var input api.StaffRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	staff := domain.Staff{
		Name:       input.Name,
		Email:      input.Email,
		Position:   input.Position,
		Department: input.Department,
		Phone:      input.Phone,
		Salary:     input.Salary,
		HireDate:   input.HireDate.Time,
		Status:     domain.StaffStatusActive,
	}

	if input.Status != "" {
		staff.Status = domain.StaffStatus(input.Status)
	}

	err = app.staffRepo.Create(r.Context(), &staff)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.badRequestResponse(w, r, fmt.Errorf("a staff member with this email already exists"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiStaff(staff), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	staffId, err := readUUIDParam(r, "staffId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.StaffRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	staff, err := app.staffRepo.GetById(r.Context(), staffId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	staff.Name = input.Name
	staff.Email = input.Email
	staff.Position = input.Position
	staff.Department = input.Department
	staff.Phone = input.Phone
	staff.Salary = input.Salary
	staff.HireDate = input.HireDate.Time

	if input.Status != "" {
		staff.Status = domain.StaffStatus(input.Status)
	}

	err = app.staffRepo.Update(r.Context(), staff)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.badRequestResponse(w, r, fmt.Errorf("a staff member with this email already exists"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiStaff(*staff), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffId, err := readUUIDParam(r, "staffId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.staffRepo.Delete(r.Context(), staffId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLeaveRequests lists leave requests, optionally filtered to one staff
// member with the staffId query parameter.
func (app *Application) GetLeaveRequests(w http.ResponseWriter, r *http.Request) {
	if staffIdValue := r.URL.Query().Get("staffId"); staffIdValue != "" {
		staffId, err := uuid.Parse(staffIdValue)
		if err != nil {
			app.badRequestResponse(w, r, fmt.Errorf("invalid staffId parameter"))
			return
		}

		requests, err := app.leaveRepo.GetByStaffId(r.Context(), staffId)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		resp := api.LeaveRequestListResponse{LeaveRequests: toApiLeaveRequests(requests)}

		err = app.writeJSON(w, http.StatusOK, resp, nil)
		if err != nil {
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	params, pagination, err := parsePaginationParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	requests, metadata, err := app.leaveRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.LeaveRequestListResponse{
		LeaveRequests: toApiLeaveRequests(requests),
		Metadata:      toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateLeaveRequest(w http.ResponseWriter, r *http.Request) {
	var input api.CreateLeaveRequestRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	if input.EndDate.Time.Before(input.StartDate.Time) {
		app.badRequestResponse(w, r, fmt.Errorf("endDate must not be before startDate"))
		return
	}

	staffId := uuid.MustParse(input.StaffId)

	_, err = app.staffRepo.GetById(r.Context(), staffId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, fmt.Errorf("staff member %s not found", staffId))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	request := domain.LeaveRequest{
		StaffID:       staffId,
		LeaveType:     input.LeaveType,
		StartDate:     input.StartDate.Time,
		EndDate:       input.EndDate.Time,
		DaysRequested: domain.LeaveDays(input.StartDate.Time, input.EndDate.Time),
		Reason:        input.Reason,
		Status:        domain.LeaveStatusPending,
	}

	err = app.leaveRepo.Create(r.Context(), &request)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiLeaveRequest(request), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ResolveLeaveRequest(w http.ResponseWriter, r *http.Request) {
	requestId, err := readUUIDParam(r, "requestId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.ResolveLeaveRequestRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	approvedBy := uuid.MustParse(input.ApprovedBy)

	err = app.leaveRepo.Resolve(r.Context(), requestId, domain.LeaveStatus(input.Status), approvedBy)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponseWithErr(w, r, fmt.Errorf("leave request has already been resolved"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parsePaginationParams(r *http.Request) (api.PaginationParams, domain.Pagination, error) {
	var params api.PaginationParams

	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	page, err := readQueryInt(r, "page")
	if err != nil {
		return params, pagination, err
	}

	pageSize, err := readQueryInt(r, "pageSize")
	if err != nil {
		return params, pagination, err
	}

	params.Page = page
	params.PageSize = pageSize

	if page != nil {
		pagination.Page = *page
	}
	if pageSize != nil {
		pagination.PageSize = *pageSize
	}

	return params, pagination, nil
}

func toApiStaffList(staff []domain.Staff) []api.StaffResponse {
	responses := make([]api.StaffResponse, len(staff))

	for i, s := range staff {
		responses[i] = toApiStaff(s)
	}

	return responses
}

func toApiStaff(s domain.Staff) api.StaffResponse {
	return api.StaffResponse{
		Id:         s.ID.String(),
		Name:       s.Name,
		Email:      s.Email,
		Position:   s.Position,
		Department: s.Department,
		Phone:      s.Phone,
		Salary:     s.Salary,
		HireDate:   types.Date{Time: s.HireDate},
		Status:     string(s.Status),
		CreatedAt:  s.CreatedAt,
	}
}

func toApiLeaveRequests(requests []domain.LeaveRequest) []api.LeaveRequestResponse {
	responses := make([]api.LeaveRequestResponse, len(requests))

	for i, req := range requests {
		responses[i] = toApiLeaveRequest(req)
	}

	return responses
}

func toApiLeaveRequest(req domain.LeaveRequest) api.LeaveRequestResponse {
	resp := api.LeaveRequestResponse{
		Id:            req.ID.String(),
		StaffId:       req.StaffID.String(),
		LeaveType:     req.LeaveType,
		StartDate:     types.Date{Time: req.StartDate},
		EndDate:       types.Date{Time: req.EndDate},
		DaysRequested: req.DaysRequested,
		Reason:        req.Reason,
		Status:        string(req.Status),
		ApprovedAt:    req.ApprovedAt,
		CreatedAt:     req.CreatedAt,
	}

	if req.ApprovedBy != nil {
		approvedBy := req.ApprovedBy.String()
		resp.ApprovedBy = &approvedBy
	}

	return resp
}
