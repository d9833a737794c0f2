package dto

import "time"

// Request DTOs

type CustomerInfoPayload struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Postcode  string `json:"postcode" validate:"required"`
}

type CreateBookingRequest struct {
	ServiceType         string              `json:"serviceType" validate:"required"`
	CustomerInfo        CustomerInfoPayload `json:"customerInfo" validate:"required"`
	BinSelection        map[string]int      `json:"binSelection" validate:"required,min=1,dive,gte=0"`
	CollectionDay       string              `json:"collectionDay"`
	SpecialInstructions string              `json:"specialInstructions"`
}

type UpdateBookingRequest struct {
	ServiceType         *string              `json:"serviceType" validate:"omitempty,min=1"`
	CustomerInfo        *CustomerInfoPayload `json:"customerInfo" validate:"omitempty"`
	BinSelection        map[string]int       `json:"binSelection" validate:"omitempty,dive,gte=0"`
	CollectionDay       *string              `json:"collectionDay"`
	SpecialInstructions *string              `json:"specialInstructions"`
	Notes               *string              `json:"notes"`
}

type UpdateBookingStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=new-job completed"`
	Notes  *string `json:"notes"`
}

// Response DTOs

type PricingResponse struct {
	BinTotal      float64 `json:"binTotal"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalPrice    float64 `json:"totalPrice"`
}

type BookingResponse struct {
	BookingID           string              `json:"bookingId"`
	ServiceType         string              `json:"serviceType"`
	CustomerInfo        CustomerInfoPayload `json:"customerInfo"`
	BinSelection        map[string]int      `json:"binSelection"`
	CollectionDay       string              `json:"collectionDay,omitempty"`
	SpecialInstructions string              `json:"specialInstructions,omitempty"`
	Pricing             PricingResponse     `json:"pricing"`
	Status              string              `json:"status"`
	Notes               string              `json:"notes,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

type CreateBookingResponse struct {
	BookingID string          `json:"bookingId"`
	Booking   BookingResponse `json:"booking"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
