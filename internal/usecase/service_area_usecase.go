package usecase

import (
	"context"

	"binfresh/internal/converter"
	"binfresh/internal/delivery/dto"
	"binfresh/internal/domain/entity"
	"binfresh/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ServiceAreaUsecase interface {
	Create(ctx context.Context, req *dto.CreateServiceAreaRequest) (*dto.ServiceAreaResponse, error)
	List(ctx context.Context) (*dto.ServiceAreaListResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateServiceAreaRequest) (*dto.ServiceAreaResponse, error)
	Delete(ctx context.Context, id string) error
	CheckPostcode(ctx context.Context, postcode string) (*dto.PostcodeCheckResponse, error)
}

type serviceAreaUsecase struct {
	log   *logrus.Logger
	areas repository.ServiceAreaRepository
}

func NewServiceAreaUsecase(log *logrus.Logger, areas repository.ServiceAreaRepository) ServiceAreaUsecase {
	return &serviceAreaUsecase{log: log, areas: areas}
}

func (u *serviceAreaUsecase) Create(ctx context.Context, req *dto.CreateServiceAreaRequest) (*dto.ServiceAreaResponse, error) {
	area := &entity.ServiceArea{
		Prefix:   req.Prefix,
		Name:     req.Name,
		IsActive: true,
	}
	if req.IsActive != nil {
		area.IsActive = *req.IsActive
	}

	stored, err := u.areas.Create(area)
	if err != nil {
		return nil, err
	}
	u.log.Infof("Service area created: prefix=%s, active=%t", stored.Prefix, stored.IsActive)
	return converter.ServiceAreaToResponse(stored), nil
}

func (u *serviceAreaUsecase) List(ctx context.Context) (*dto.ServiceAreaListResponse, error) {
	areas, err := u.areas.List()
	if err != nil {
		return nil, err
	}
	return &dto.ServiceAreaListResponse{
		Areas: converter.ServiceAreasToResponses(areas),
		Total: len(areas),
	}, nil
}

func (u *serviceAreaUsecase) Update(ctx context.Context, id string, req *dto.UpdateServiceAreaRequest) (*dto.ServiceAreaResponse, error) {
	updated, err := u.areas.Update(id, entity.ServiceAreaPatch{
		Prefix:   req.Prefix,
		Name:     req.Name,
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}
	return converter.ServiceAreaToResponse(updated), nil
}

func (u *serviceAreaUsecase) Delete(ctx context.Context, id string) error {
	return u.areas.Delete(id)
}

// CheckPostcode answers the public booking form's "do you cover me" question
func (u *serviceAreaUsecase) CheckPostcode(ctx context.Context, postcode string) (*dto.PostcodeCheckResponse, error) {
	if entity.NormalizePostcode(postcode) == "" {
		return nil, entity.NewValidationError("postcode", "postcode is required")
	}

	resp := &dto.PostcodeCheckResponse{Postcode: postcode}

	count, err := u.areas.Count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		resp.Serviceable = true
		return resp, nil
	}

	match, err := u.areas.FindActiveMatch(postcode)
	if err != nil {
		return nil, err
	}
	if match != nil {
		resp.Serviceable = true
		resp.AreaName = match.Name
	}
	return resp, nil
}
