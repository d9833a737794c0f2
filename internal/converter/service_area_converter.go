package converter

import (
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
)

// ServiceAreaToResponse converts a ServiceArea entity to its DTO
func ServiceAreaToResponse(area *entity.ServiceArea) *dto.ServiceAreaResponse {
	if area == nil {
		return nil
	}
	return &dto.ServiceAreaResponse{
		ID:        area.ID,
		Prefix:    area.Prefix,
		Name:      area.Name,
		IsActive:  area.IsActive,
		CreatedAt: area.CreatedAt,
		UpdatedAt: area.UpdatedAt,
	}
}

// ServiceAreasToResponses converts a slice of entities to DTOs
func ServiceAreasToResponses(areas []entity.ServiceArea) []dto.ServiceAreaResponse {
	responses := make([]dto.ServiceAreaResponse, len(areas))
	for i := range areas {
		responses[i] = *ServiceAreaToResponse(&areas[i])
	}
	return responses
}
