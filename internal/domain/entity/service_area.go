package entity

import (
	"strings"
	"time"
)

// ServiceArea is a postcode-area prefix the business currently serves.
// Prefixes are stored normalized (upper case, no surrounding space).
type ServiceArea struct {
	ID        string    `json:"id"`
	Prefix    string    `json:"prefix"`
	Name      string    `json:"name,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Matches reports whether the given postcode falls inside this area
func (a *ServiceArea) Matches(postcode string) bool {
	return strings.HasPrefix(NormalizePostcode(postcode), a.Prefix)
}

// ServiceAreaPatch carries a partial service-area update
type ServiceAreaPatch struct {
	Prefix   *string
	Name     *string
	IsActive *bool
}

// NormalizePostcode upper-cases and strips spaces for prefix comparison
func NormalizePostcode(postcode string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(postcode), " ", ""))
}

// NewServiceAreaID generates a service-area id: SA-YYYYMMDDHHMMSS-XXXXXX
func NewServiceAreaID() string {
	return newPrefixedID("SA")
}
