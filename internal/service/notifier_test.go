package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"binfresh/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, templateKey string, payload map[string]interface{}) error {
	args := m.Called(ctx, to, subject, templateKey, payload)
	return args.Error(0)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testBooking() *entity.Booking {
	return &entity.Booking{
		BookingID: "BK-20250101000000-AAAAAA",
		CustomerInfo: entity.CustomerInfo{
			FirstName: "Jo",
			LastName:  "Bloggs",
			Email:     "jo@example.com",
			Postcode:  "LS1 4AP",
		},
		Status: entity.BookingStatusNewJob,
	}
}

func TestDispatchBookingCreated_SendsConfirmation(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "jo@example.com", mock.Anything, TemplateBookingConfirmation, mock.Anything).Return(nil)

	d := NewNotificationDispatcher(quietLogger(), mailer, "staff@example.com")
	err := d.DispatchBookingCreated(context.Background(), testBooking())

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestDispatchBookingCreated_SkipsWhenNoEmail(t *testing.T) {
	mailer := new(MockMailer)

	booking := testBooking()
	booking.CustomerInfo.Email = ""

	d := NewNotificationDispatcher(quietLogger(), mailer, "staff@example.com")
	err := d.DispatchBookingCreated(context.Background(), booking)

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchStatusChange_UsesStatusTemplate(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "jo@example.com", mock.Anything, TemplateBookingCompleted, mock.Anything).Return(nil)

	d := NewNotificationDispatcher(quietLogger(), mailer, "staff@example.com")
	err := d.DispatchStatusChange(context.Background(), testBooking(), entity.BookingStatusNewJob, entity.BookingStatusCompleted)

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestDispatchStatusChange_PropagatesTransportFailure(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

	d := NewNotificationDispatcher(quietLogger(), mailer, "staff@example.com")
	err := d.DispatchStatusChange(context.Background(), testBooking(), entity.BookingStatusNewJob, entity.BookingStatusCompleted)

	// The caller decides what to do with the failure; the dispatcher reports it
	assert.Error(t, err)
}

func TestDispatchAdminAlert_SkipsWhenUnconfigured(t *testing.T) {
	mailer := new(MockMailer)

	d := NewNotificationDispatcher(quietLogger(), mailer, "")
	err := d.DispatchAdminAlert(context.Background(), testBooking())

	assert.NoError(t, err)
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatchAdminAlert_SendsToStaff(t *testing.T) {
	mailer := new(MockMailer)
	mailer.On("Send", mock.Anything, "staff@example.com", mock.Anything, TemplateAdminNewBooking, mock.Anything).Return(nil)

	d := NewNotificationDispatcher(quietLogger(), mailer, "staff@example.com")
	err := d.DispatchAdminAlert(context.Background(), testBooking())

	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}
