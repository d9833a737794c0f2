package repository

import (
	"sort"
	"sync"
	"time"

	"binfresh/internal/domain/entity"
	domainRepo "binfresh/internal/domain/repository"
	"binfresh/internal/infrastructure/store"
)

const serviceAreasCollection = "service-areas"

type serviceAreaRepository struct {
	mu    sync.Mutex
	store *store.DualStore
}

func NewServiceAreaRepository(st *store.DualStore) domainRepo.ServiceAreaRepository {
	return &serviceAreaRepository{store: st}
}

func (r *serviceAreaRepository) Create(area *entity.ServiceArea) (*entity.ServiceArea, error) {
	prefix := entity.NormalizePostcode(area.Prefix)
	if prefix == "" {
		return nil, entity.NewValidationError("prefix", "prefix is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return nil, err
	}
	for _, existing := range areas {
		if existing.Prefix == prefix {
			return nil, entity.NewValidationError("prefix", "service area "+prefix+" already exists")
		}
	}

	now := time.Now().UTC()
	stored := *area
	stored.Prefix = prefix
	if stored.ID == "" {
		stored.ID = entity.NewServiceAreaID()
	}
	stored.CreatedAt = now
	stored.UpdatedAt = now

	areas = append(areas, stored)
	if err := r.save(areas); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *serviceAreaRepository) List() ([]entity.ServiceArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(areas, func(i, j int) bool {
		return areas[i].Prefix < areas[j].Prefix
	})
	return areas, nil
}

func (r *serviceAreaRepository) Update(id string, patch entity.ServiceAreaPatch) (*entity.ServiceArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range areas {
		if areas[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, entity.NewNotFoundError("service area", id)
	}

	a := areas[idx]
	if patch.Prefix != nil {
		prefix := entity.NormalizePostcode(*patch.Prefix)
		if prefix == "" {
			return nil, entity.NewValidationError("prefix", "prefix must not be empty")
		}
		for i, existing := range areas {
			if i != idx && existing.Prefix == prefix {
				return nil, entity.NewValidationError("prefix", "service area "+prefix+" already exists")
			}
		}
		a.Prefix = prefix
	}
	if patch.Name != nil {
		a.Name = *patch.Name
	}
	if patch.IsActive != nil {
		a.IsActive = *patch.IsActive
	}
	a.UpdatedAt = time.Now().UTC()

	areas[idx] = a
	if err := r.save(areas); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *serviceAreaRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return err
	}
	for i := range areas {
		if areas[i].ID == id {
			areas = append(areas[:i], areas[i+1:]...)
			return r.save(areas)
		}
	}
	return entity.NewNotFoundError("service area", id)
}

func (r *serviceAreaRepository) FindActiveMatch(postcode string) (*entity.ServiceArea, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return nil, err
	}

	// Longest prefix wins so "SW1A" beats "SW" when both are configured
	var best *entity.ServiceArea
	for i := range areas {
		if !areas[i].IsActive || !areas[i].Matches(postcode) {
			continue
		}
		if best == nil || len(areas[i].Prefix) > len(best.Prefix) {
			best = &areas[i]
		}
	}
	if best == nil {
		return nil, nil
	}
	found := *best
	return &found, nil
}

func (r *serviceAreaRepository) Count() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	areas, err := r.load()
	if err != nil {
		return 0, err
	}
	return len(areas), nil
}

func (r *serviceAreaRepository) PurgeAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save([]entity.ServiceArea{})
}

func (r *serviceAreaRepository) load() ([]entity.ServiceArea, error) {
	var areas []entity.ServiceArea
	if err := r.store.Load(serviceAreasCollection, &areas); err != nil {
		return nil, err
	}
	return areas, nil
}

func (r *serviceAreaRepository) save(areas []entity.ServiceArea) error {
	return r.store.Save(serviceAreasCollection, areas)
}
