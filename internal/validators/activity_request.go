package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-waitroom/models"
)

// MaxActivityIDLength bounds activity ids chosen by operators.
const MaxActivityIDLength = 64

// ActivityRequestValidator validates [models.CreateActivityRequest] and
// [models.UpdateActivityRequest]. Field scoping is not supported.
type ActivityRequestValidator struct{}

func NewActivityRequestValidator() Validator {
	return &ActivityRequestValidator{}
}

func (v *ActivityRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		return ErrUnknownField
	}

	switch value := obj.(type) {
	case models.CreateActivityRequest:
		return v.validateCreate(value)
	case *models.CreateActivityRequest:
		return v.validateCreate(*value)

	case models.UpdateActivityRequest:
		return v.validateUpdate(value)
	case *models.UpdateActivityRequest:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

// validateCreate accepts zero rate, zero interval and empty status; the
// service fills those in.
func (v *ActivityRequestValidator) validateCreate(req models.CreateActivityRequest) error {
	if err := validActivityID(req.ID); err != nil {
		return err
	}
	if err := requiredString(req.Name, ErrEmptyActivityName); err != nil {
		return err
	}
	if req.Status != "" && !req.Status.Valid() {
		return ErrInvalidActivityStatus
	}
	if req.ReleaseRate < 0 {
		return ErrInvalidReleaseRate
	}
	if req.PollIntervalMs < 0 {
		return ErrInvalidPollInterval
	}
	if req.StartAt != nil && req.EndAt != nil {
		return ValidTimeRange(*req.StartAt, *req.EndAt)
	}
	return nil
}

// validateUpdate checks each present field on its own. The time range is
// only known after merging with the stored activity; see [ValidTimeRange].
func (v *ActivityRequestValidator) validateUpdate(req models.UpdateActivityRequest) error {
	if req.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if req.Name != nil {
		if err := requiredString(*req.Name, ErrEmptyActivityName); err != nil {
			return err
		}
	}
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidActivityStatus
	}
	if req.ReleaseRate != nil && *req.ReleaseRate <= 0 {
		return ErrInvalidReleaseRate
	}
	if req.PollIntervalMs != nil && *req.PollIntervalMs <= 0 {
		return ErrInvalidPollInterval
	}
	return nil
}

// ValidTimeRange rejects windows that end before they start. A zero bound
// is open.
func ValidTimeRange(start, end time.Time) error {
	if !start.IsZero() && !end.IsZero() && !end.After(start) {
		return ErrInvalidTimeRange
	}
	return nil
}

func validActivityID(id string) error {
	switch {
	case id == "":
		return ErrEmptyActivityID
	case len(id) > MaxActivityIDLength:
		return ErrFieldTooLong
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return ErrInvalidActivityID
		}
	}
	return nil
}
