package converter

import (
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to its response DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}
	return &dto.BookingResponse{
		BookingID:   booking.BookingID,
		ServiceType: booking.ServiceType,
		CustomerInfo: dto.CustomerInfoPayload{
			FirstName: booking.CustomerInfo.FirstName,
			LastName:  booking.CustomerInfo.LastName,
			Email:     booking.CustomerInfo.Email,
			Phone:     booking.CustomerInfo.Phone,
			Address:   booking.CustomerInfo.Address,
			Postcode:  booking.CustomerInfo.Postcode,
		},
		BinSelection:        booking.BinSelection,
		CollectionDay:       booking.CollectionDay,
		SpecialInstructions: booking.SpecialInstructions,
		Pricing: dto.PricingResponse{
			BinTotal:      booking.Pricing.BinTotal,
			ServiceCharge: booking.Pricing.ServiceCharge,
			TotalPrice:    booking.Pricing.TotalPrice,
		},
		Status:    string(booking.Status),
		Notes:     booking.Notes,
		CreatedAt: booking.CreatedAt,
		UpdatedAt: booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

// CustomerInfoFromPayload converts the request payload to the entity shape
func CustomerInfoFromPayload(payload dto.CustomerInfoPayload) entity.CustomerInfo {
	return entity.CustomerInfo{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Address:   payload.Address,
		Postcode:  payload.Postcode,
	}
}
