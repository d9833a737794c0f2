package repository

import "binfresh/internal/domain/entity"

type BookingRepository interface {
	// Create validates the required fields, assigns bookingId, createdAt
	// and status defaults, recomputes pricing and persists the booking.
	Create(booking *entity.Booking) (*entity.Booking, error)
	// List returns bookings sorted by createdAt descending. The ordering
	// is part of the contract, callers rely on it.
	List(filter entity.BookingFilter) ([]entity.Booking, error)
	FindByID(id string) (*entity.Booking, error)
	// Update shallow-merges the patch into the stored booking. Nested
	// values such as customerInfo are replaced wholesale, not deep-merged.
	Update(id string, patch entity.BookingPatch) (*entity.Booking, error)
	Delete(id string) error
	// PurgeAll empties the collection. Administrative use only.
	PurgeAll() error
}
