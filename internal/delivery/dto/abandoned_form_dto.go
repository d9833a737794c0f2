package dto

import "time"

// Request DTOs

// CaptureAbandonedFormRequest mirrors the booking form field names, all
// optional: the customer may have filled in any subset before leaving.
type CaptureAbandonedFormRequest struct {
	SessionID     string         `json:"sessionId" validate:"required"`
	FirstName     string         `json:"firstName"`
	LastName      string         `json:"lastName"`
	Email         string         `json:"email" validate:"omitempty,email"`
	Phone         string         `json:"phone"`
	Address       string         `json:"address"`
	Postcode      string         `json:"postcode"`
	ServiceType   string         `json:"serviceType"`
	PaymentMethod string         `json:"paymentMethod"`
	CollectionDay string         `json:"collectionDay"`
	BinSelection  map[string]int `json:"binSelection" validate:"omitempty,dive,gte=0"`
}

type UpdateAbandonedFormStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=abandoned contacted converted unqualified"`
	Notes  *string `json:"notes"`
}

// Response DTOs

type CaptureAbandonedFormResponse struct {
	FormID string `json:"formId"`
}

type AbandonedFormResponse struct {
	ID                   string         `json:"id"`
	SessionID            string         `json:"sessionId"`
	FirstName            string         `json:"firstName,omitempty"`
	LastName             string         `json:"lastName,omitempty"`
	Email                string         `json:"email,omitempty"`
	Phone                string         `json:"phone,omitempty"`
	Address              string         `json:"address,omitempty"`
	Postcode             string         `json:"postcode,omitempty"`
	ServiceType          string         `json:"serviceType,omitempty"`
	PaymentMethod        string         `json:"paymentMethod,omitempty"`
	CollectionDay        string         `json:"collectionDay,omitempty"`
	BinSelection         map[string]int `json:"binSelection,omitempty"`
	CompletionPercentage int            `json:"completionPercentage"`
	PotentialValue       float64        `json:"potentialValue"`
	Status               string         `json:"status"`
	Notes                string         `json:"notes,omitempty"`
	CreatedAt            time.Time      `json:"createdAt"`
	LastUpdated          time.Time      `json:"lastUpdated"`
}

type AbandonedFormStatsResponse struct {
	Total               int     `json:"total"`
	WithEmail           int     `json:"withEmail"`
	WithPhone           int     `json:"withPhone"`
	WithContact         int     `json:"withContact"`
	HighValue           int     `json:"highValue"`
	AverageCompletion   int     `json:"averageCompletion"`
	TotalPotentialValue float64 `json:"totalPotentialValue"`
}

type AbandonedFormListResponse struct {
	Forms []AbandonedFormResponse    `json:"forms"`
	Stats AbandonedFormStatsResponse `json:"stats"`
	Total int                        `json:"total"`
}
