package usecase

import (
	"context"

	"binfresh/internal/converter"
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
	"binfresh/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type AbandonedFormUsecase interface {
	Capture(ctx context.Context, req *dto.CaptureAbandonedFormRequest) (*dto.CaptureAbandonedFormResponse, error)
	ListWithStats(ctx context.Context, status string, limit int) (*dto.AbandonedFormListResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateAbandonedFormStatusRequest) (*dto.AbandonedFormResponse, error)
}

type abandonedFormUsecase struct {
	log   *logrus.Logger
	forms repository.AbandonedFormRepository
}

func NewAbandonedFormUsecase(log *logrus.Logger, forms repository.AbandonedFormRepository) AbandonedFormUsecase {
	return &abandonedFormUsecase{log: log, forms: forms}
}

func (u *abandonedFormUsecase) Capture(ctx context.Context, req *dto.CaptureAbandonedFormRequest) (*dto.CaptureAbandonedFormResponse, error) {
	form, err := u.forms.CaptureOrMerge(req.SessionID, converter.FormDataFromCaptureRequest(req))
	if err != nil {
		return nil, err
	}

	u.log.Infof("Abandoned form captured: id=%s, session=%s, completion=%d%%",
		form.ID, form.SessionID, form.CompletionPercentage)
	return &dto.CaptureAbandonedFormResponse{FormID: form.ID}, nil
}

func (u *abandonedFormUsecase) ListWithStats(ctx context.Context, status string, limit int) (*dto.AbandonedFormListResponse, error) {
	filter := entity.AbandonedFormFilter{Limit: limit}
	if status != "" {
		filter.Status = entity.AbandonedFormStatus(status)
		if !filter.Status.Valid() {
			return nil, entity.NewValidationError("status", "unknown status "+status)
		}
	}

	forms, stats, err := u.forms.ListWithStats(filter)
	if err != nil {
		u.log.Warnf("Failed to list abandoned forms: %+v", err)
		return nil, err
	}

	return &dto.AbandonedFormListResponse{
		Forms: converter.AbandonedFormsToResponses(forms),
		Stats: converter.AbandonedFormStatsToResponse(stats),
		Total: len(forms),
	}, nil
}

func (u *abandonedFormUsecase) UpdateStatus(ctx context.Context, id string, req *dto.UpdateAbandonedFormStatusRequest) (*dto.AbandonedFormResponse, error) {
	form, err := u.forms.UpdateStatus(id, entity.AbandonedFormStatus(req.Status), req.Notes)
	if err != nil {
		return nil, err
	}
	return converter.AbandonedFormToResponse(form), nil
}
