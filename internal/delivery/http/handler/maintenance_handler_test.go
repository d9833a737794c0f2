package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockMaintenanceUsecase struct {
	mock.Mock
}

func (m *MockMaintenanceUsecase) PurgeAll(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestPurgeData_RefusedWithoutClearAllFlag(t *testing.T) {
	uc := new(MockMaintenanceUsecase)
	h := NewMaintenanceHandler(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/data", nil)
	rec := httptest.NewRecorder()
	h.PurgeData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "PurgeAll", mock.Anything)
}

func TestPurgeData_RefusedWithWrongFlagValue(t *testing.T) {
	uc := new(MockMaintenanceUsecase)
	h := NewMaintenanceHandler(uc)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/data?clearAll=yes", nil)
	rec := httptest.NewRecorder()
	h.PurgeData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "PurgeAll", mock.Anything)
}

func TestPurgeData_Success(t *testing.T) {
	uc := new(MockMaintenanceUsecase)
	h := NewMaintenanceHandler(uc)

	uc.On("PurgeAll", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/data?clearAll=true", nil)
	rec := httptest.NewRecorder()
	h.PurgeData(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestPurgeData_StoreFailure(t *testing.T) {
	uc := new(MockMaintenanceUsecase)
	h := NewMaintenanceHandler(uc)

	uc.On("PurgeAll", mock.Anything).Return(errors.New("disk gone"))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/data?clearAll=true", nil)
	rec := httptest.NewRecorder()
	h.PurgeData(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
