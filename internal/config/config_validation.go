// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig]. Per-binary requirements are
// enforced by the projected configs; the shared config only rejects values
// that are invalid for every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Queue.MaxRetries < 0 {
		return fmt.Errorf("%w: negative max retries", ErrInvalidQueueConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.ActivityID == "" {
		return fmt.Errorf("%w: activity id is required", ErrInvalidAppConfigs)
	}
	if (cfg.App.UserIdentifier == "") != (cfg.App.DeviceIdentifier == "") {
		return fmt.Errorf("%w: user and device identifiers must be set together", ErrInvalidAppConfigs)
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Queue.MaxRetries < 1 || cfg.Queue.RetryBaseDelay <= 0 || cfg.Queue.DefaultPollInterval <= 0 {
		return ErrInvalidQueueConfigs
	}
	if cfg.Queue.MaxRetries > MaxQueueRetries {
		return fmt.Errorf("%w: max retries %d exceeds %d", ErrInvalidQueueConfigs, cfg.Queue.MaxRetries, MaxQueueRetries)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Workers.ReleaseInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}
	return nil
}
