package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waitroom/internal/validators"
	"github.com/MKhiriev/go-waitroom/models"
)

type AdminValidationService struct {
	inner     AdminService
	validator validators.Validator
}

func NewAdminValidationService() AdminServiceWrapper {
	return &AdminValidationService{
		validator: validators.NewActivityRequestValidator(),
	}
}

func (v *AdminValidationService) CreateActivity(ctx context.Context, req models.CreateActivityRequest) (models.Activity, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return v.inner.CreateActivity(ctx, req)
}

func (v *AdminValidationService) ListActivities(ctx context.Context) ([]models.Activity, error) {
	return v.inner.ListActivities(ctx)
}

func (v *AdminValidationService) ActivityStatus(ctx context.Context, activityID string) (models.ActivityStatusReport, error) {
	if activityID == "" {
		return models.ActivityStatusReport{}, fmt.Errorf("%w: %w", ErrInvalidRequest, validators.ErrEmptyActivityID)
	}
	return v.inner.ActivityStatus(ctx, activityID)
}

func (v *AdminValidationService) UpdateActivity(ctx context.Context, activityID string, req models.UpdateActivityRequest) (models.Activity, error) {
	if activityID == "" {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrInvalidRequest, validators.ErrEmptyActivityID)
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Activity{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return v.inner.UpdateActivity(ctx, activityID, req)
}

func (v *AdminValidationService) Wrap(inner AdminService) AdminService {
	v.inner = inner
	return v
}
