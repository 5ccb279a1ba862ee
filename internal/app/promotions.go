package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cinetick/movie-ticket-booking/api"
	"github.com/cinetick/movie-ticket-booking/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

// GetCurrentPromotions is the public listing: only promotions that are
// active, inside their date window, and under their usage limit.
func (app *Application) GetCurrentPromotions(w http.ResponseWriter, r *http.Request) {
	promotions, err := app.promotionRepo.GetCurrent(r.Context(), time.Now())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PromotionListResponse{Promotions: toApiPromotions(promotions)}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPromotions(w http.ResponseWriter, r *http.Request) {
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

	promotions, metadata, err := app.promotionRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PromotionListResponse{
		Promotions: toApiPromotions(promotions),
		Metadata:   toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	input, err := app.readPromotionRequest(w, r)
	if err != nil {
		return
	}

	promotion := domain.Promotion{
		Title:              input.Title,
		Description:        input.Description,
		PromoCode:          input.PromoCode,
		DiscountAmount:     input.DiscountAmount,
		DiscountPercentage: input.DiscountPercentage,
		StartDate:          input.StartDate.Time,
		EndDate:            input.EndDate.Time,
		UsageLimit:         input.UsageLimit,
		IsActive:           input.IsActive,
	}

	err = app.promotionRepo.Create(r.Context(), &promotion)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toApiPromotion(promotion), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	promotionId, err := readUUIDParam(r, "promotionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	input, err := app.readPromotionRequest(w, r)
	if err != nil {
		return
	}

	promotion := domain.Promotion{
		ID:                 promotionId,
		Title:              input.Title,
		Description:        input.Description,
		PromoCode:          input.PromoCode,
		DiscountAmount:     input.DiscountAmount,
		DiscountPercentage: input.DiscountPercentage,
		StartDate:          input.StartDate.Time,
		EndDate:            input.EndDate.Time,
		UsageLimit:         input.UsageLimit,
		IsActive:           input.IsActive,
	}

	err = app.promotionRepo.Update(r.Context(), &promotion)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toApiPromotion(promotion), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	promotionId, err := readUUIDParam(r, "promotionId")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.promotionRepo.Delete(r.Context(), promotionId)
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

// readPromotionRequest decodes and validates a promotion payload, writing the
// error response itself on failure.
func (app *Application) readPromotionRequest(w http.ResponseWriter, r *http.Request) (api.PromotionRequest, error) {
	var input api.PromotionRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return input, err
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return input, err
	}

	if input.EndDate.Time.Before(input.StartDate.Time) {
		err = fmt.Errorf("endDate must not be before startDate")
		app.badRequestResponse(w, r, err)
		return input, err
	}

	return input, nil
}

func toApiPromotions(promotions []domain.Promotion) []api.PromotionResponse {
	responses := make([]api.PromotionResponse, len(promotions))

	for i, p := range promotions {
		responses[i] = toApiPromotion(p)
	}

	return responses
}

func toApiPromotion(p domain.Promotion) api.PromotionResponse {
	return api.PromotionResponse{
		Id:                 p.ID.String(),
		Title:              p.Title,
		Description:        p.Description,
		PromoCode:          p.PromoCode,
		DiscountAmount:     p.DiscountAmount,
		DiscountPercentage: p.DiscountPercentage,
		StartDate:          types.Date{Time: p.StartDate},
		EndDate:            types.Date{Time: p.EndDate},
		UsageLimit:         p.UsageLimit,
		UsedCount:          p.UsedCount,
		IsActive:           p.IsActive,
	}
}
