package entity

import (
	"crypto/rand"
	"fmt"
	"time"
)

// BookingStatus represents the lifecycle status of a booking
type BookingStatus string

const (
	BookingStatusNewJob    BookingStatus = "new-job"
	BookingStatusCompleted BookingStatus = "completed"
)

// Valid reports whether s is a known booking status
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusNewJob, BookingStatusCompleted:
		return true
	}
	return false
}

// CustomerInfo holds the customer contact details captured with a booking
type CustomerInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Postcode  string `json:"postcode"`
}

// IsZero reports whether no customer field was supplied at all
func (c CustomerInfo) IsZero() bool {
	return c == CustomerInfo{}
}

// Pricing is always derived from the bin selection and service type,
// never edited by hand. TotalPrice = BinTotal + ServiceCharge.
type Pricing struct {
	BinTotal      float64 `json:"binTotal"`
	ServiceCharge float64 `json:"serviceCharge"`
	TotalPrice    float64 `json:"totalPrice"`
}

// Booking represents a confirmed bin-cleaning service order
type Booking struct {
	BookingID           string         `json:"bookingId"`
	ServiceType         string         `json:"serviceType"`
	CustomerInfo        CustomerInfo   `json:"customerInfo"`
	BinSelection        map[string]int `json:"binSelection"`
	CollectionDay       string         `json:"collectionDay,omitempty"`
	SpecialInstructions string         `json:"specialInstructions,omitempty"`
	Pricing             Pricing        `json:"pricing"`
	Status              BookingStatus  `json:"status"`
	Notes               string         `json:"notes,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

// IsCompleted checks if the booking has been marked completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// BookingFilter narrows List results. Zero values mean "no constraint".
type BookingFilter struct {
	Status BookingStatus
	Limit  int
}

// BookingPatch carries a partial update. Nil fields are left untouched;
// supplied fields replace the existing value wholesale (shallow merge).
// Pricing is intentionally absent: it is recomputed whenever BinSelection
// or ServiceType changes.
type BookingPatch struct {
	ServiceType         *string
	CustomerInfo        *CustomerInfo
	BinSelection        map[string]int
	CollectionDay       *string
	SpecialInstructions *string
	Status              *BookingStatus
	Notes               *string
}

// NewBookingID generates a booking id: BK-YYYYMMDDHHMMSS-XXXXXX
func NewBookingID() string {
	return newPrefixedID("BK")
}

func newPrefixedID(prefix string) string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("%s-%s-%06X", prefix, time.Now().UTC().Format("20060102150405"), randomBytes)
}
