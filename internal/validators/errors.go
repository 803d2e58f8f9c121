package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyActivityID       = errors.New("activity_id is required")
	ErrEmptyUserIdentifier   = errors.New("user_identifier is required")
	ErrEmptyDeviceIdentifier = errors.New("device_identifier is required")
	ErrEmptySessionID        = errors.New("session_id is required")
	ErrInvalidSequenceNumber = errors.New("sequence_number must be positive")
	ErrFieldTooLong          = errors.New("field exceeds maximum length")

	ErrInvalidActivityID     = errors.New("id may only contain letters, digits, '-' and '_'")
	ErrEmptyActivityName     = errors.New("name is required")
	ErrInvalidActivityStatus = errors.New("status must be one of draft, active, paused, ended")
	ErrInvalidReleaseRate    = errors.New("release_rate must be positive")
	ErrInvalidPollInterval   = errors.New("poll_interval_ms must be positive")
	ErrInvalidTimeRange      = errors.New("end_at must be after start_at")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
)
