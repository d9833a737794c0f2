package repository

import "binfresh/internal/domain/entity"

type ServiceAreaRepository interface {
	// Create persists a new area. Prefixes are unique across the collection.
	Create(area *entity.ServiceArea) (*entity.ServiceArea, error)
	List() ([]entity.ServiceArea, error)
	Update(id string, patch entity.ServiceAreaPatch) (*entity.ServiceArea, error)
	Delete(id string) error
	// FindActiveMatch returns the first active area whose prefix matches
	// the postcode, or nil when no area matches.
	FindActiveMatch(postcode string) (*entity.ServiceArea, error)
	Count() (int, error)
	PurgeAll() error
}
