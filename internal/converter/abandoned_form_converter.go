package converter

import (
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
)

// FormDataFromCaptureRequest maps the flat capture payload onto FormData
func FormDataFromCaptureRequest(req *dto.CaptureAbandonedFormRequest) entity.FormData {
	return entity.FormData{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		Postcode:      req.Postcode,
		ServiceType:   req.ServiceType,
		PaymentMethod: req.PaymentMethod,
		CollectionDay: req.CollectionDay,
		BinSelection:  req.BinSelection,
	}
}

// AbandonedFormToResponse converts an AbandonedForm entity to its DTO
func AbandonedFormToResponse(form *entity.AbandonedForm) *dto.AbandonedFormResponse {
	if form == nil {
		return nil
	}
	return &dto.AbandonedFormResponse{
		ID:                   form.ID,
		SessionID:            form.SessionID,
		FirstName:            form.FormData.FirstName,
		LastName:             form.FormData.LastName,
		Email:                form.FormData.Email,
		Phone:                form.FormData.Phone,
		Address:              form.FormData.Address,
		Postcode:             form.FormData.Postcode,
		ServiceType:          form.FormData.ServiceType,
		PaymentMethod:        form.FormData.PaymentMethod,
		CollectionDay:        form.FormData.CollectionDay,
		BinSelection:         form.FormData.BinSelection,
		CompletionPercentage: form.CompletionPercentage,
		PotentialValue:       form.PotentialValue,
		Status:               string(form.Status),
		Notes:                form.Notes,
		CreatedAt:            form.CreatedAt,
		LastUpdated:          form.LastUpdated,
	}
}

// AbandonedFormsToResponses converts a slice of entities to DTOs
func AbandonedFormsToResponses(forms []entity.AbandonedForm) []dto.AbandonedFormResponse {
	responses := make([]dto.AbandonedFormResponse, len(forms))
	for i := range forms {
		responses[i] = *AbandonedFormToResponse(&forms[i])
	}
	return responses
}

// AbandonedFormStatsToResponse converts the aggregate summary
func AbandonedFormStatsToResponse(stats *entity.AbandonedFormStats) dto.AbandonedFormStatsResponse {
	if stats == nil {
		return dto.AbandonedFormStatsResponse{}
	}
	return dto.AbandonedFormStatsResponse{
		Total:               stats.Total,
		WithEmail:           stats.WithEmail,
		WithPhone:           stats.WithPhone,
		WithContact:         stats.WithContact,
		HighValue:           stats.HighValue,
		AverageCompletion:   stats.AverageCompletion,
		TotalPotentialValue: stats.TotalPotentialValue,
	}
}
