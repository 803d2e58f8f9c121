package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates missing client identity settings
	// (for example, no activity id, or only one identifier override).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidQueueConfigs indicates an unusable retry or polling policy.
	ErrInvalidQueueConfigs = errors.New("invalid queue configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive release interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
