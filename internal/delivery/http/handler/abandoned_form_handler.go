package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"binfresh/internal/delivery/dto"
	"binfresh/internal/usecase"
	"binfresh/pkg/response"
	"binfresh/pkg/validator"

	"github.com/gorilla/mux"
)

type AbandonedFormHandler struct {
	formUsecase usecase.AbandonedFormUsecase
	validator   *validator.CustomValidator
}

func NewAbandonedFormHandler(formUsecase usecase.AbandonedFormUsecase, validator *validator.CustomValidator) *AbandonedFormHandler {
	return &AbandonedFormHandler{
		formUsecase: formUsecase,
		validator:   validator,
	}
}

// CaptureForm receives partial form sessions from the public booking page
func (h *AbandonedFormHandler) CaptureForm(w http.ResponseWriter, r *http.Request) {
	var req dto.CaptureAbandonedFormRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.formUsecase.Capture(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to capture form")
		return
	}

	response.Success(w, http.StatusCreated, "Form captured successfully", result)
}

func (h *AbandonedFormHandler) ListForms(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	limit := 0
	if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed < 0 {
			response.Error(w, http.StatusBadRequest, "Invalid limit", nil)
			return
		}
		limit = parsed
	}

	result, err := h.formUsecase.ListWithStats(r.Context(), status, limit)
	if err != nil {
		writeDomainError(w, err, "Failed to list abandoned forms")
		return
	}

	response.Success(w, http.StatusOK, "Abandoned forms retrieved successfully", result)
}

func (h *AbandonedFormHandler) UpdateFormStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateAbandonedFormStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	form, err := h.formUsecase.UpdateStatus(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update form status")
		return
	}

	response.Success(w, http.StatusOK, "Form status updated successfully", form)
}
