package dto

import "time"

// Request DTOs

type CreateServiceAreaRequest struct {
	Prefix   string `json:"prefix" validate:"required,min=1,max=8"`
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive"`
}

type UpdateServiceAreaRequest struct {
	Prefix   *string `json:"prefix" validate:"omitempty,min=1,max=8"`
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// Response DTOs

type ServiceAreaResponse struct {
	ID        string    `json:"id"`
	Prefix    string    `json:"prefix"`
	Name      string    `json:"name,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ServiceAreaListResponse struct {
	Areas []ServiceAreaResponse `json:"areas"`
	Total int                   `json:"total"`
}

type PostcodeCheckResponse struct {
	Postcode    string `json:"postcode"`
	Serviceable bool   `json:"serviceable"`
	AreaName    string `json:"areaName,omitempty"`
}
