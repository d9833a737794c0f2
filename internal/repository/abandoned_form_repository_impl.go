package repository

import (
	"math"
	"sort"
	"sync"
	"time"

	"binfresh/internal/domain/entity"
	domainRepo "binfresh/internal/domain/repository"
	"binfresh/internal/infrastructure/store"
	"binfresh/internal/service"
)

const abandonedFormsCollection = "abandoned-forms"

type abandonedFormRepository struct {
	mu    sync.Mutex
	store *store.DualStore
	calc  *service.Calculator

	// retentionCap bounds collection growth: once exceeded, the oldest
	// records are evicted and the newest retained.
	retentionCap int
	// highValueThreshold marks a captured session as a high-value lead
	// in the aggregate stats.
	highValueThreshold float64
}

func NewAbandonedFormRepository(st *store.DualStore, calc *service.Calculator, retentionCap int, highValueThreshold float64) domainRepo.AbandonedFormRepository {
	return &abandonedFormRepository{
		store:              st,
		calc:               calc,
		retentionCap:       retentionCap,
		highValueThreshold: highValueThreshold,
	}
}

func (r *abandonedFormRepository) CaptureOrMerge(sessionID string, data entity.FormData) (*entity.AbandonedForm, error) {
	if sessionID == "" {
		return nil, entity.NewValidationError("sessionId", "sessionId is required")
	}
	if !data.HasMeaningfulData() {
		return nil, entity.NewValidationError("formData", "no meaningful data")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	forms, err := r.load()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	idx := -1
	for i := range forms {
		if forms[i].SessionID == sessionID {
			idx = i
			break
		}
	}

	var result entity.AbandonedForm
	if idx >= 0 {
		result = forms[idx]
		result.FormData = result.FormData.Merge(data)
		result.CompletionPercentage = r.calc.CompletionPercentage(result.FormData)
		result.PotentialValue = r.calc.PotentialValue(result.FormData.BinSelection)
		result.LastUpdated = now
		forms[idx] = result
	} else {
		result = entity.AbandonedForm{
			ID:                   entity.NewAbandonedFormID(),
			SessionID:            sessionID,
			FormData:             data,
			CompletionPercentage: r.calc.CompletionPercentage(data),
			PotentialValue:       r.calc.PotentialValue(data.BinSelection),
			Status:               entity.AbandonedFormStatusAbandoned,
			CreatedAt:            now,
			LastUpdated:          now,
		}
		forms = append(forms, result)
	}

	forms = r.enforceRetention(forms)

	if err := r.save(forms); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *abandonedFormRepository) UpdateStatus(id string, status entity.AbandonedFormStatus, notes *string) (*entity.AbandonedForm, error) {
	if !status.Valid() {
		return nil, entity.NewValidationError("status", "unknown status "+string(status))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	forms, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range forms {
		if forms[i].ID != id {
			continue
		}
		forms[i].Status = status
		if notes != nil {
			forms[i].Notes = *notes
		}
		forms[i].LastUpdated = time.Now().UTC()
		updated := forms[i]
		if err := r.save(forms); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, entity.NewNotFoundError("abandoned form", id)
}

func (r *abandonedFormRepository) ListWithStats(filter entity.AbandonedFormFilter) ([]entity.AbandonedForm, *entity.AbandonedFormStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	forms, err := r.load()
	if err != nil {
		return nil, nil, err
	}

	stats := r.aggregate(forms)

	result := make([]entity.AbandonedForm, 0, len(forms))
	for _, f := range forms {
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		result = append(result, f)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, stats, nil
}

func (r *abandonedFormRepository) PurgeAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save([]entity.AbandonedForm{})
}

// enforceRetention drops the oldest records once the cap is exceeded
func (r *abandonedFormRepository) enforceRetention(forms []entity.AbandonedForm) []entity.AbandonedForm {
	if r.retentionCap <= 0 || len(forms) <= r.retentionCap {
		return forms
	}
	sort.SliceStable(forms, func(i, j int) bool {
		return forms[i].CreatedAt.Before(forms[j].CreatedAt)
	})
	return forms[len(forms)-r.retentionCap:]
}

func (r *abandonedFormRepository) aggregate(forms []entity.AbandonedForm) *entity.AbandonedFormStats {
	stats := &entity.AbandonedFormStats{Total: len(forms)}

	var completionSum int
	for _, f := range forms {
		hasEmail := f.FormData.Email != ""
		hasPhone := f.FormData.Phone != ""
		if hasEmail {
			stats.WithEmail++
		}
		if hasPhone {
			stats.WithPhone++
		}
		if hasEmail || hasPhone {
			stats.WithContact++
		}
		if f.PotentialValue >= r.highValueThreshold {
			stats.HighValue++
		}
		completionSum += f.CompletionPercentage
		stats.TotalPotentialValue += f.PotentialValue
	}

	if len(forms) > 0 {
		stats.AverageCompletion = int(math.Round(float64(completionSum) / float64(len(forms))))
	}
	return stats
}

func (r *abandonedFormRepository) load() ([]entity.AbandonedForm, error) {
	var forms []entity.AbandonedForm
	if err := r.store.Load(abandonedFormsCollection, &forms); err != nil {
		return nil, err
	}
	return forms, nil
}

func (r *abandonedFormRepository) save(forms []entity.AbandonedForm) error {
	return r.store.Save(abandonedFormsCollection, forms)
}
