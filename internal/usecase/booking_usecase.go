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

type BookingUsecase interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	List(ctx context.Context, status string, limit int) (*dto.BookingListResponse, error)
	Get(ctx context.Context, bookingID string) (*dto.BookingResponse, error)
	Update(ctx context.Context, bookingID string, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, bookingID string) error
}

type bookingUsecase struct {
	log        *logrus.Logger
	bookings   repository.BookingRepository
	areas      repository.ServiceAreaRepository
	dispatcher service.NotificationDispatcher
}

func NewBookingUsecase(
	log *logrus.Logger,
	bookings repository.BookingRepository,
	areas repository.ServiceAreaRepository,
	dispatcher service.NotificationDispatcher,
) BookingUsecase {
	return &bookingUsecase{
		log:        log,
		bookings:   bookings,
		areas:      areas,
		dispatcher: dispatcher,
	}
}

// Create persists a new booking and fires the confirmation and admin
// alert afterwards. Persistence is the primary effect: a notification
// failure is logged and never rolls the booking back.
func (u *bookingUsecase) Create(ctx context.Context, req *dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	if err := u.checkServiceArea(req.CustomerInfo.Postcode); err != nil {
		return nil, err
	}

	booking := &entity.Booking{
		ServiceType:         req.ServiceType,
		CustomerInfo:        converter.CustomerInfoFromPayload(req.CustomerInfo),
		BinSelection:        req.BinSelection,
		CollectionDay:       req.CollectionDay,
		SpecialInstructions: req.SpecialInstructions,
	}

	stored, err := u.bookings.Create(booking)
	if err != nil {
		u.log.Warnf("Failed to create booking: %+v", err)
		return nil, err
	}

	if err := u.dispatcher.DispatchBookingCreated(ctx, stored); err != nil {
		u.log.Warnf("Booking confirmation for %s failed (non-fatal): %+v", stored.BookingID, err)
	}
	if err := u.dispatcher.DispatchAdminAlert(ctx, stored); err != nil {
		u.log.Warnf("Admin alert for %s failed (non-fatal): %+v", stored.BookingID, err)
	}

	u.log.Infof("Booking created: id=%s, postcode=%s, total=%.2f",
		stored.BookingID, stored.CustomerInfo.Postcode, stored.Pricing.TotalPrice)

	return &dto.CreateBookingResponse{
		BookingID: stored.BookingID,
		Booking:   *converter.BookingToResponse(stored),
	}, nil
}

func (u *bookingUsecase) List(ctx context.Context, status string, limit int) (*dto.BookingListResponse, error) {
	filter := entity.BookingFilter{Limit: limit}
	if status != "" {
		filter.Status = entity.BookingStatus(status)
		if !filter.Status.Valid() {
			return nil, entity.NewValidationError("status", "unknown status "+status)
		}
	}

	bookings, err := u.bookings.List(filter)
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

func (u *bookingUsecase) Get(ctx context.Context, bookingID string) (*dto.BookingResponse, error) {
	booking, err := u.bookings.FindByID(bookingID)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(booking), nil
}

func (u *bookingUsecase) Update(ctx context.Context, bookingID string, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	patch := entity.BookingPatch{
		ServiceType:         req.ServiceType,
		BinSelection:        req.BinSelection,
		CollectionDay:       req.CollectionDay,
		SpecialInstructions: req.SpecialInstructions,
		Notes:               req.Notes,
	}
	if req.CustomerInfo != nil {
		info := converter.CustomerInfoFromPayload(*req.CustomerInfo)
		patch.CustomerInfo = &info
	}

	updated, err := u.bookings.Update(bookingID, patch)
	if err != nil {
		return nil, err
	}
	return converter.BookingToResponse(updated), nil
}

func (u *bookingUsecase) Delete(ctx context.Context, bookingID string) error {
	if err := u.bookings.Delete(bookingID); err != nil {
		return err
	}
	u.log.Infof("Booking deleted: id=%s", bookingID)
	return nil
}

// checkServiceArea rejects postcodes outside the configured areas. An
// empty area list disables the check so a fresh deployment can take
// bookings before staff configure coverage.
func (u *bookingUsecase) checkServiceArea(postcode string) error {
	count, err := u.areas.Count()
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}

	match, err := u.areas.FindActiveMatch(postcode)
	if err != nil {
		return err
	}
	if match == nil {
		return entity.NewValidationError("postcode", postcode+" is outside our current service areas")
	}
	return nil
}
