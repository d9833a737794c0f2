package handler

import (
	"net/http"

	"binfresh/internal/usecase"
	"binfresh/pkg/response"
)

type MaintenanceHandler struct {
	maintenanceUsecase usecase.MaintenanceUsecase
}

func NewMaintenanceHandler(maintenanceUsecase usecase.MaintenanceUsecase) *MaintenanceHandler {
	return &MaintenanceHandler{maintenanceUsecase: maintenanceUsecase}
}

// PurgeData empties every collection. The clearAll=true query flag is a
// deliberate second gate on top of admin auth: a bare DELETE without it
// is refused.
func (h *MaintenanceHandler) PurgeData(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("clearAll") != "true" {
		response.Error(w, http.StatusBadRequest, "Purge requires clearAll=true", nil)
		return
	}

	if err := h.maintenanceUsecase.PurgeAll(r.Context()); err != nil {
		response.InternalServerError(w, "Failed to purge data")
		return
	}

	response.Success(w, http.StatusOK, "All collections purged", nil)
}
