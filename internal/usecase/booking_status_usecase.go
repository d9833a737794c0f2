package usecase

import (
	"context"

	"binfresh/internal/converter"
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
	"binfresh/internal/domain/repository"
	"binfresh/internal/service"

	"github.com/sirupsen/logrus"
)

// BookingStatusUsecase enforces the booking status state machine.
// Transitions are reopenable: completed bookings may go back to new-job
// when a job turns out to need another visit.
type BookingStatusUsecase interface {
	Transition(ctx context.Context, bookingID string, newStatus entity.BookingStatus, notes *string) (*dto.BookingResponse, error)
}

type bookingStatusUsecase struct {
	log        *logrus.Logger
	bookings   repository.BookingRepository
	dispatcher service.NotificationDispatcher
}

func NewBookingStatusUsecase(
	log *logrus.Logger,
	bookings repository.BookingRepository,
	dispatcher service.NotificationDispatcher,
) BookingStatusUsecase {
	return &bookingStatusUsecase{
		log:        log,
		bookings:   bookings,
		dispatcher: dispatcher,
	}
}

// Transition applies a status change and notifies at most once.
// Setting the status a booking already has is a no-op: nothing is
// persisted and nothing is dispatched, so redundant calls cannot
// produce duplicate notifications.
func (u *bookingStatusUsecase) Transition(ctx context.Context, bookingID string, newStatus entity.BookingStatus, notes *string) (*dto.BookingResponse, error) {
	if !newStatus.Valid() {
		return nil, entity.NewValidationError("status", "unknown status "+string(newStatus))
	}

	booking, err := u.bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	oldStatus := booking.Status

	if oldStatus == newStatus && notes == nil {
		return converter.BookingToResponse(booking), nil
	}

	patch := entity.BookingPatch{Notes: notes}
	if oldStatus != newStatus {
		patch.Status = &newStatus
	}

	updated, err := u.bookings.Update(bookingID, patch)
	if err != nil {
		return nil, err
	}

	if oldStatus != newStatus {
		if err := u.dispatcher.DispatchStatusChange(ctx, updated, oldStatus, newStatus); err != nil {
			u.log.Warnf("Status notification for %s failed (non-fatal): %+v", bookingID, err)
		}
		u.log.Infof("Booking %s transitioned: %s -> %s", bookingID, oldStatus, newStatus)
	}

	return converter.BookingToResponse(updated), nil
}
