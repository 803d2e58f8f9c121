package validators

import (
	"context"

	"github.com/MKhiriev/go-waitroom/models"
)

// Field names accepted by [QueueRequestValidator.Validate].
const (
	FieldActivityID       = "activity_id"
	FieldUserIdentifier   = "user_identifier"
	FieldDeviceIdentifier = "device_identifier"
	FieldSessionID        = "session_id"
	FieldSequenceNumber   = "sequence_number"
)

// MaxIdentifierLength bounds every string field of a queue request.
const MaxIdentifierLength = 256

// QueueRequestValidator validates [models.EnterRequest] and
// [models.StatusRequest], by value or by pointer.
type QueueRequestValidator struct{}

func NewQueueRequestValidator() Validator {
	return &QueueRequestValidator{}
}

// Validate returns the first failing rule. With no fields every field of
// the request is checked.
func (v *QueueRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.EnterRequest:
		return v.validateEnterRequest(value, fields...)
	case *models.EnterRequest:
		return v.validateEnterRequest(*value, fields...)

	case models.StatusRequest:
		return v.validateStatusRequest(value, fields...)
	case *models.StatusRequest:
		return v.validateStatusRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateEnterRequest checks activity and user by default. The device
// identifier is optional on the wire and only checked when named.
func (v *QueueRequestValidator) validateEnterRequest(req models.EnterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActivityID, FieldUserIdentifier}
	}

	for _, f := range fields {
		switch f {
		case FieldActivityID:
			if err := requiredString(req.ActivityID, ErrEmptyActivityID); err != nil {
				return err
			}
		case FieldUserIdentifier:
			if err := requiredString(req.UserIdentifier, ErrEmptyUserIdentifier); err != nil {
				return err
			}
		case FieldDeviceIdentifier:
			if err := requiredString(req.DeviceIdentifier, ErrEmptyDeviceIdentifier); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QueueRequestValidator) validateStatusRequest(req models.StatusRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActivityID, FieldSequenceNumber, FieldSessionID}
	}

	for _, f := range fields {
		switch f {
		case FieldActivityID:
			if err := requiredString(req.ActivityID, ErrEmptyActivityID); err != nil {
				return err
			}
		case FieldSessionID:
			if err := requiredString(req.SessionID, ErrEmptySessionID); err != nil {
				return err
			}
		case FieldSequenceNumber:
			if req.SequenceNumber <= 0 {
				return ErrInvalidSequenceNumber
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func requiredString(value string, empty error) error {
	switch {
	case value == "":
		return empty
	case len(value) > MaxIdentifierLength:
		return ErrFieldTooLong
	}
	return nil
}
