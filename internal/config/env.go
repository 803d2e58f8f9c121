// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Fields are mapped through the `env` and `envPrefix` tags on
// [StructuredConfig], e.g. QUEUE_MAX_RETRIES or ADAPTER_ADDRESS.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
