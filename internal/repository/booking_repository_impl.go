package repository

import (
	"sort"
	"sync"
	"time"

	"binfresh/internal/domain/entity"
	domainRepo "binfresh/internal/domain/repository"
	"binfresh/internal/infrastructure/store"
	"binfresh/internal/service"
)

const bookingsCollection = "bookings"

type bookingRepository struct {
	// mu serializes the load-mutate-save cycle: the store has no
	// partial-record update, so two concurrent cycles would silently
	// drop one write.
	mu    sync.Mutex
	store *store.DualStore
	calc  *service.Calculator
}

func NewBookingRepository(st *store.DualStore, calc *service.Calculator) domainRepo.BookingRepository {
	return &bookingRepository{store: st, calc: calc}
}

func (r *bookingRepository) Create(booking *entity.Booking) (*entity.Booking, error) {
	if booking.ServiceType == "" {
		return nil, entity.NewValidationError("serviceType", "serviceType is required")
	}
	if booking.CustomerInfo.IsZero() {
		return nil, entity.NewValidationError("customerInfo", "customerInfo is required")
	}
	if len(booking.BinSelection) == 0 {
		return nil, entity.NewValidationError("binSelection", "binSelection is required")
	}
	for binType, qty := range booking.BinSelection {
		if qty < 0 {
			return nil, entity.NewValidationError("binSelection", "quantity for "+binType+" must not be negative")
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := *booking
	if stored.BookingID == "" {
		stored.BookingID = entity.NewBookingID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = now
	}
	if stored.Status == "" {
		stored.Status = entity.BookingStatusNewJob
	}
	stored.UpdatedAt = now
	stored.Pricing = r.calc.Pricing(stored.BinSelection, stored.ServiceType)

	bookings = append(bookings, stored)
	if err := r.save(bookings); err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *bookingRepository) List(filter entity.BookingFilter) ([]entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		result = append(result, b)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *bookingRepository) FindByID(id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].BookingID == id {
			found := bookings[i]
			return &found, nil
		}
	}
	return nil, entity.NewNotFoundError("booking", id)
}

func (r *bookingRepository) Update(id string, patch entity.BookingPatch) (*entity.Booking, error) {
	if patch.BinSelection != nil {
		if len(patch.BinSelection) == 0 {
			return nil, entity.NewValidationError("binSelection", "binSelection must not be empty")
		}
		for binType, qty := range patch.BinSelection {
			if qty < 0 {
				return nil, entity.NewValidationError("binSelection", "quantity for "+binType+" must not be negative")
			}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range bookings {
		if bookings[i].BookingID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, entity.NewNotFoundError("booking", id)
	}

	b := bookings[idx]
	repriceNeeded := false
	if patch.ServiceType != nil {
		b.ServiceType = *patch.ServiceType
		repriceNeeded = true
	}
	if patch.CustomerInfo != nil {
		b.CustomerInfo = *patch.CustomerInfo
	}
	if patch.BinSelection != nil {
		b.BinSelection = patch.BinSelection
		repriceNeeded = true
	}
	if patch.CollectionDay != nil {
		b.CollectionDay = *patch.CollectionDay
	}
	if patch.SpecialInstructions != nil {
		b.SpecialInstructions = *patch.SpecialInstructions
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.Notes != nil {
		b.Notes = *patch.Notes
	}
	if repriceNeeded {
		b.Pricing = r.calc.Pricing(b.BinSelection, b.ServiceType)
	}
	b.UpdatedAt = time.Now().UTC()

	bookings[idx] = b
	if err := r.save(bookings); err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookingRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings, err := r.load()
	if err != nil {
		return err
	}

	idx := -1
	for i := range bookings {
		if bookings[i].BookingID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return entity.NewNotFoundError("booking", id)
	}

	bookings = append(bookings[:idx], bookings[idx+1:]...)
	return r.save(bookings)
}

func (r *bookingRepository) PurgeAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save([]entity.Booking{})
}

func (r *bookingRepository) load() ([]entity.Booking, error) {
	var bookings []entity.Booking
	if err := r.store.Load(bookingsCollection, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) save(bookings []entity.Booking) error {
	return r.store.Save(bookingsCollection, bookings)
}
