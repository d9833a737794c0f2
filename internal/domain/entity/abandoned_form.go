package entity

import "time"

// AbandonedFormStatus represents the follow-up state of a captured session
type AbandonedFormStatus string

const (
	AbandonedFormStatusAbandoned   AbandonedFormStatus = "abandoned"
	AbandonedFormStatusContacted   AbandonedFormStatus = "contacted"
	AbandonedFormStatusConverted   AbandonedFormStatus = "converted"
	AbandonedFormStatusUnqualified AbandonedFormStatus = "unqualified"
)

// Valid reports whether s is a known abandoned-form status
func (s AbandonedFormStatus) Valid() bool {
	switch s {
	case AbandonedFormStatusAbandoned, AbandonedFormStatusContacted,
		AbandonedFormStatusConverted, AbandonedFormStatusUnqualified:
		return true
	}
	return false
}

// FormData holds the sparse booking fields a customer filled in before
// leaving the form. Any subset may be present.
type FormData struct {
	FirstName     string         `json:"firstName,omitempty"`
	LastName      string         `json:"lastName,omitempty"`
	Email         string         `json:"email,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Address       string         `json:"address,omitempty"`
	Postcode      string         `json:"postcode,omitempty"`
	ServiceType   string         `json:"serviceType,omitempty"`
	PaymentMethod string         `json:"paymentMethod,omitempty"`
	CollectionDay string         `json:"collectionDay,omitempty"`
	BinSelection  map[string]int `json:"binSelection,omitempty"`
}

// HasMeaningfulData reports whether the submission is worth keeping:
// at least a name, a way to reach the customer, or a bin selection.
func (f FormData) HasMeaningfulData() bool {
	if f.FirstName != "" || f.LastName != "" || f.Email != "" || f.Phone != "" || f.Address != "" {
		return true
	}
	return f.HasBinSelection()
}

// HasBinSelection reports whether any bin quantity is above zero
func (f FormData) HasBinSelection() bool {
	for _, qty := range f.BinSelection {
		if qty > 0 {
			return true
		}
	}
	return false
}

// Merge overlays in on top of f. Fields present in in win; fields the
// customer left blank keep their previously captured value.
func (f FormData) Merge(in FormData) FormData {
	out := f
	if in.FirstName != "" {
		out.FirstName = in.FirstName
	}
	if in.LastName != "" {
		out.LastName = in.LastName
	}
	if in.Email != "" {
		out.Email = in.Email
	}
	if in.Phone != "" {
		out.Phone = in.Phone
	}
	if in.Address != "" {
		out.Address = in.Address
	}
	if in.Postcode != "" {
		out.Postcode = in.Postcode
	}
	if in.ServiceType != "" {
		out.ServiceType = in.ServiceType
	}
	if in.PaymentMethod != "" {
		out.PaymentMethod = in.PaymentMethod
	}
	if in.CollectionDay != "" {
		out.CollectionDay = in.CollectionDay
	}
	if len(in.BinSelection) > 0 {
		out.BinSelection = in.BinSelection
	}
	return out
}

// AbandonedForm is a partially completed booking session captured for
// remarketing follow-up. At most one record exists per SessionID.
type AbandonedForm struct {
	ID                   string              `json:"id"`
	SessionID            string              `json:"sessionId"`
	FormData             FormData            `json:"formData"`
	CompletionPercentage int                 `json:"completionPercentage"`
	PotentialValue       float64             `json:"potentialValue"`
	Status               AbandonedFormStatus `json:"status"`
	Notes                string              `json:"notes,omitempty"`
	CreatedAt            time.Time           `json:"createdAt"`
	LastUpdated          time.Time           `json:"lastUpdated"`
}

// AbandonedFormFilter narrows ListWithStats results
type AbandonedFormFilter struct {
	Status AbandonedFormStatus
	Limit  int
}

// AbandonedFormStats aggregates a snapshot of the whole collection
type AbandonedFormStats struct {
	Total               int     `json:"total"`
	WithEmail           int     `json:"withEmail"`
	WithPhone           int     `json:"withPhone"`
	WithContact         int     `json:"withContact"`
	HighValue           int     `json:"highValue"`
	AverageCompletion   int     `json:"averageCompletion"`
	TotalPotentialValue float64 `json:"totalPotentialValue"`
}

// NewAbandonedFormID generates an abandoned-form id: AF-YYYYMMDDHHMMSS-XXXXXX
func NewAbandonedFormID() string {
	return newPrefixedID("AF")
}
