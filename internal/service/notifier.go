package service

import (
	"context"
	"fmt"

	"binfresh/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Notification template keys. The renderer picks the email HTML by key;
// the mapping lives here so callers never branch on status strings.
const (
	TemplateBookingConfirmation = "booking-confirmation"
	TemplateAdminNewBooking     = "admin-new-booking"
	TemplateBookingCompleted    = "booking-completed"
	TemplateBookingReopened     = "booking-reopened"
)

var statusTemplates = map[entity.BookingStatus]string{
	entity.BookingStatusCompleted: TemplateBookingCompleted,
	entity.BookingStatusNewJob:    TemplateBookingReopened,
}

// Mailer is the outbound mail transport boundary. The real renderer and
// SMTP delivery live outside this service.
type Mailer interface {
	Send(ctx context.Context, to, subject, templateKey string, payload map[string]interface{}) error
}

// NotificationDispatcher decides whether to send a message for a booking
// event and to whom. Every dispatch is best-effort: callers log the
// returned error and never fail the primary operation on it.
type NotificationDispatcher interface {
	DispatchBookingCreated(ctx context.Context, booking *entity.Booking) error
	DispatchStatusChange(ctx context.Context, booking *entity.Booking, oldStatus, newStatus entity.BookingStatus) error
	DispatchAdminAlert(ctx context.Context, booking *entity.Booking) error
}

type notificationDispatcher struct {
	log        *logrus.Logger
	mailer     Mailer
	adminEmail string
}

func NewNotificationDispatcher(log *logrus.Logger, mailer Mailer, adminEmail string) NotificationDispatcher {
	return &notificationDispatcher{
		log:        log,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// DispatchBookingCreated sends the customer their confirmation
func (d *notificationDispatcher) DispatchBookingCreated(ctx context.Context, booking *entity.Booking) error {
	if booking.CustomerInfo.Email == "" {
		d.log.Warnf("Booking %s has no customer email, skipping confirmation", booking.BookingID)
		return nil
	}

	subject := fmt.Sprintf("Your bin cleaning booking %s is confirmed", booking.BookingID)
	return d.mailer.Send(ctx, booking.CustomerInfo.Email, subject, TemplateBookingConfirmation, bookingPayload(booking))
}

// DispatchStatusChange notifies the customer about a status transition.
// Statuses without a template entry are silently skipped.
func (d *notificationDispatcher) DispatchStatusChange(ctx context.Context, booking *entity.Booking, oldStatus, newStatus entity.BookingStatus) error {
	templateKey, ok := statusTemplates[newStatus]
	if !ok {
		d.log.Warnf("No notification template for status %q, skipping", newStatus)
		return nil
	}
	if booking.CustomerInfo.Email == "" {
		d.log.Warnf("Booking %s has no customer email, skipping status notification", booking.BookingID)
		return nil
	}

	subject := fmt.Sprintf("Update on your bin cleaning booking %s", booking.BookingID)
	payload := bookingPayload(booking)
	payload["oldStatus"] = string(oldStatus)
	payload["newStatus"] = string(newStatus)
	return d.mailer.Send(ctx, booking.CustomerInfo.Email, subject, templateKey, payload)
}

// DispatchAdminAlert tells staff a new booking came in
func (d *notificationDispatcher) DispatchAdminAlert(ctx context.Context, booking *entity.Booking) error {
	if d.adminEmail == "" {
		d.log.Warn("No admin email configured, skipping admin alert")
		return nil
	}

	subject := fmt.Sprintf("New booking %s (%s)", booking.BookingID, booking.CustomerInfo.Postcode)
	return d.mailer.Send(ctx, d.adminEmail, subject, TemplateAdminNewBooking, bookingPayload(booking))
}

func bookingPayload(booking *entity.Booking) map[string]interface{} {
	return map[string]interface{}{
		"bookingId":     booking.BookingID,
		"customerName":  booking.CustomerInfo.FirstName + " " + booking.CustomerInfo.LastName,
		"serviceType":   booking.ServiceType,
		"binSelection":  booking.BinSelection,
		"collectionDay": booking.CollectionDay,
		"totalPrice":    booking.Pricing.TotalPrice,
		"status":        string(booking.Status),
	}
}

// LogMailer is the default Mailer: it records the outbound message in
// the application log instead of delivering it. Deployments plug a real
// transport in via the same interface.
type LogMailer struct {
	log *logrus.Logger
}

func NewLogMailer(log *logrus.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, to, subject, templateKey string, payload map[string]interface{}) error {
	m.log.WithFields(logrus.Fields{
		"to":       to,
		"subject":  subject,
		"template": templateKey,
		"payload":  payload,
	}).Info("Outbound notification")
	return nil
}
