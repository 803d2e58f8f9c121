package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-waitroom/internal/validators"
	"github.com/MKhiriev/go-waitroom/models"
)

type QueueValidationService struct {
	inner     QueueService
	validator validators.Validator
}

func NewQueueValidationService() QueueServiceWrapper {
	return &QueueValidationService{
		validator: validators.NewQueueRequestValidator(),
	}
}

func (v *QueueValidationService) Enter(ctx context.Context, req models.EnterRequest) (models.Session, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.Enter(ctx, req)
}

func (v *QueueValidationService) Status(ctx context.Context, req models.StatusRequest) (models.QueueStatus, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.QueueStatus{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return v.inner.Status(ctx, req)
}

func (v *QueueValidationService) Wrap(inner QueueService) QueueService {
	v.inner = inner
	return v
}
