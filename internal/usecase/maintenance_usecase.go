package usecase

import (
	"context"

	"binfresh/internal/infrastructure/store"

	"github.com/sirupsen/logrus"
)

// MaintenanceUsecase holds the administrative purge. It is wired only
// into the explicitly gated admin endpoint, never into the normal
// create/update/delete paths.
type MaintenanceUsecase interface {
	PurgeAll(ctx context.Context) error
}

type maintenanceUsecase struct {
	log   *logrus.Logger
	store *store.DualStore
}

func NewMaintenanceUsecase(log *logrus.Logger, st *store.DualStore) MaintenanceUsecase {
	return &maintenanceUsecase{log: log, store: st}
}

// PurgeAll empties every collection in both store backings
func (u *maintenanceUsecase) PurgeAll(ctx context.Context) error {
	if err := u.store.Purge(); err != nil {
		return err
	}
	u.log.Warn("All collections purged by administrative request")
	return nil
}
