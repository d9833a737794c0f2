package handler

import (
	"encoding/json"
	"net/http"

	"binfresh/internal/delivery/dto"
	"binfresh/internal/usecase"
	"binfresh/pkg/response"
	"binfresh/pkg/validator"

	"github.com/gorilla/mux"
)

type ServiceAreaHandler struct {
	areaUsecase usecase.ServiceAreaUsecase
	validator   *validator.CustomValidator
}

func NewServiceAreaHandler(areaUsecase usecase.ServiceAreaUsecase, validator *validator.CustomValidator) *ServiceAreaHandler {
	return &ServiceAreaHandler{
		areaUsecase: areaUsecase,
		validator:   validator,
	}
}

func (h *ServiceAreaHandler) CreateArea(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	area, err := h.areaUsecase.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, "Failed to create service area")
		return
	}

	response.Success(w, http.StatusCreated, "Service area created successfully", area)
}

func (h *ServiceAreaHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.areaUsecase.List(r.Context())
	if err != nil {
		writeDomainError(w, err, "Failed to list service areas")
		return
	}

	response.Success(w, http.StatusOK, "Service areas retrieved successfully", areas)
}

func (h *ServiceAreaHandler) UpdateArea(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateServiceAreaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	area, err := h.areaUsecase.Update(r.Context(), mux.Vars(r)["id"], &req)
	if err != nil {
		writeDomainError(w, err, "Failed to update service area")
		return
	}

	response.Success(w, http.StatusOK, "Service area updated successfully", area)
}

func (h *ServiceAreaHandler) DeleteArea(w http.ResponseWriter, r *http.Request) {
	if err := h.areaUsecase.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeDomainError(w, err, "Failed to delete service area")
		return
	}

	response.Success(w, http.StatusOK, "Service area deleted successfully", nil)
}

// CheckPostcode answers the public form's coverage question
func (h *ServiceAreaHandler) CheckPostcode(w http.ResponseWriter, r *http.Request) {
	result, err := h.areaUsecase.CheckPostcode(r.Context(), r.URL.Query().Get("postcode"))
	if err != nil {
		writeDomainError(w, err, "Failed to check postcode")
		return
	}

	response.Success(w, http.StatusOK, "Postcode checked successfully", result)
}
