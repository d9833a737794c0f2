package repository

import "binfresh/internal/domain/entity"

type AbandonedFormRepository interface {
	// CaptureOrMerge upserts by session id: an existing session is merged
	// (new fields win, status preserved), an unknown session creates a new
	// record with status "abandoned". Enforces the retention cap.
	CaptureOrMerge(sessionID string, data entity.FormData) (*entity.AbandonedForm, error)
	UpdateStatus(id string, status entity.AbandonedFormStatus, notes *string) (*entity.AbandonedForm, error)
	// ListWithStats returns records newest-first plus an aggregate summary
	// over the whole collection.
	ListWithStats(filter entity.AbandonedFormFilter) ([]entity.AbandonedForm, *entity.AbandonedFormStats, error)
	PurgeAll() error
}
