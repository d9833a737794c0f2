package repository

import (
	"io"
	"testing"
	"time"

	"binfresh/internal/domain/entity"
	domainRepo "binfresh/internal/domain/repository"
	"binfresh/internal/infrastructure/store"
	"binfresh/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testCalculator() *service.Calculator {
	return service.NewCalculator(map[string]float64{"wheelie": 5, "food": 3}, 10)
}

func newBookingRepo(fs afero.Fs) domainRepo.BookingRepository {
	return NewBookingRepository(store.New(fs, "data", testLogger()), testCalculator())
}

func validBooking() *entity.Booking {
	return &entity.Booking{
		ServiceType: "oneoff",
		CustomerInfo: entity.CustomerInfo{
			FirstName: "Jo",
			LastName:  "Bloggs",
			Email:     "jo@example.com",
			Phone:     "07700900000",
			Address:   "1 Test Street",
			Postcode:  "LS1 4AP",
		},
		BinSelection: map[string]int{"wheelie": 2, "food": 1},
	}
}

func TestBookingRepository_CreateAssignsDefaults(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	assert.NotEmpty(t, stored.BookingID)
	assert.Equal(t, entity.BookingStatusNewJob, stored.Status)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestBookingRepository_CreateComputesPricing(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	assert.Equal(t, 13.0, stored.Pricing.BinTotal)
	assert.Equal(t, 10.0, stored.Pricing.ServiceCharge)
	assert.Equal(t, 23.0, stored.Pricing.TotalPrice)
}

func TestBookingRepository_CreateValidatesRequiredFields(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	cases := []struct {
		name    string
		mutate  func(*entity.Booking)
		field   string
	}{
		{"missing service type", func(b *entity.Booking) { b.ServiceType = "" }, "serviceType"},
		{"missing customer info", func(b *entity.Booking) { b.CustomerInfo = entity.CustomerInfo{} }, "customerInfo"},
		{"missing bin selection", func(b *entity.Booking) { b.BinSelection = nil }, "binSelection"},
		{"negative quantity", func(b *entity.Booking) { b.BinSelection = map[string]int{"wheelie": -1} }, "binSelection"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			booking := validBooking()
			tc.mutate(booking)

			_, err := repo.Create(booking)
			var validationErr *entity.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestBookingRepository_ListSortsNewestFirst(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	older := validBooking()
	older.BookingID = "BK-older"
	older.CreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := validBooking()
	newer.BookingID = "BK-newer"
	newer.CreatedAt = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(older)
	require.NoError(t, err)
	_, err = repo.Create(newer)
	require.NoError(t, err)

	bookings, err := repo.List(entity.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "BK-newer", bookings[0].BookingID)
	assert.Equal(t, "BK-older", bookings[1].BookingID)
}

func TestBookingRepository_ListFiltersByStatusAndLimit(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	for i := 0; i < 3; i++ {
		_, err := repo.Create(validBooking())
		require.NoError(t, err)
	}
	completed := validBooking()
	completed.Status = entity.BookingStatusCompleted
	_, err := repo.Create(completed)
	require.NoError(t, err)

	newJobs, err := repo.List(entity.BookingFilter{Status: entity.BookingStatusNewJob})
	require.NoError(t, err)
	assert.Len(t, newJobs, 3)

	limited, err := repo.List(entity.BookingFilter{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestBookingRepository_UpdateShallowMergeReplacesCustomerInfoWholesale(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	// Only email supplied: remaining customer fields are wiped, not merged
	updated, err := repo.Update(stored.BookingID, entity.BookingPatch{
		CustomerInfo: &entity.CustomerInfo{Email: "new@example.com"},
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.CustomerInfo.Email)
	assert.Empty(t, updated.CustomerInfo.FirstName)
	assert.Equal(t, stored.BinSelection, updated.BinSelection)
}

func TestBookingRepository_UpdateRecomputesPricing(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	updated, err := repo.Update(stored.BookingID, entity.BookingPatch{
		BinSelection: map[string]int{"wheelie": 1},
	})
	require.NoError(t, err)

	assert.Equal(t, 5.0, updated.Pricing.BinTotal)
	assert.Equal(t, 15.0, updated.Pricing.TotalPrice)
	assert.Equal(t, updated.Pricing.BinTotal+updated.Pricing.ServiceCharge, updated.Pricing.TotalPrice)
}

func TestBookingRepository_UpdatePreservesNotesUnlessReplaced(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	booking := validBooking()
	booking.Notes = "gate code 1234"
	stored, err := repo.Create(booking)
	require.NoError(t, err)

	day := "Tuesday"
	updated, err := repo.Update(stored.BookingID, entity.BookingPatch{CollectionDay: &day})
	require.NoError(t, err)

	assert.Equal(t, "gate code 1234", updated.Notes)
	assert.Equal(t, "Tuesday", updated.CollectionDay)
}

func TestBookingRepository_UpdateRejectsInvalidBinSelection(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	cases := []struct {
		name      string
		selection map[string]int
	}{
		{"empty selection", map[string]int{}},
		{"negative quantity", map[string]int{"wheelie": -2}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := repo.Update(stored.BookingID, entity.BookingPatch{BinSelection: tc.selection})
			var validationErr *entity.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "binSelection", validationErr.Field)
		})
	}

	// The stored booking is untouched by the rejected patches
	found, err := repo.FindByID(stored.BookingID)
	require.NoError(t, err)
	assert.Equal(t, stored.BinSelection, found.BinSelection)
}

func TestBookingRepository_UpdateUnknownIDFails(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	day := "Tuesday"
	_, err := repo.Update("BK-missing", entity.BookingPatch{CollectionDay: &day})
	var notFoundErr *entity.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestBookingRepository_DeleteUnknownIDLeavesCollectionUnchanged(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	err = repo.Delete("BK-missing")
	var notFoundErr *entity.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)

	bookings, err := repo.List(entity.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, stored.BookingID, bookings[0].BookingID)
}

func TestBookingRepository_CreateSurvivesDurableWriteFailure(t *testing.T) {
	// Unwritable disk: the durable write fails on every save
	repo := newBookingRepo(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	stored, err := repo.Create(validBooking())
	require.NoError(t, err)

	found, err := repo.FindByID(stored.BookingID)
	require.NoError(t, err)
	assert.Equal(t, stored.BookingID, found.BookingID)
}

func TestBookingRepository_PurgeAllEmptiesCollection(t *testing.T) {
	repo := newBookingRepo(afero.NewMemMapFs())

	_, err := repo.Create(validBooking())
	require.NoError(t, err)

	require.NoError(t, repo.PurgeAll())

	bookings, err := repo.List(entity.BookingFilter{})
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
