// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// queue client and the queue server simulator. It is populated by merging
// defaults, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the identity of the queue client and its activity.
	App App `envPrefix:"APP_"`
	// Queue holds the polling and retry policy of the queue client.
	Queue Queue `envPrefix:"QUEUE_"`
	// Adapter holds the client's view of the queue server.
	Adapter Adapter `envPrefix:"ADAPTER_"`
	// Server holds the simulator's listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`
	// Storage holds the simulator's database settings.
	Storage Storage `envPrefix:"STORAGE_"`
	// Workers holds the simulator's background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`
	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client identity settings.
type App struct {
	// ActivityID is the activity whose queue the client joins.
	// Env: APP_ACTIVITY_ID
	ActivityID string `env:"ACTIVITY_ID"`
	// UserIdentifier overrides the host-derived user identifier.
	// Env: APP_USER_IDENTIFIER
	UserIdentifier string `env:"USER_IDENTIFIER"`
	// DeviceIdentifier overrides the host-derived device identifier.
	// Env: APP_DEVICE_IDENTIFIER
	DeviceIdentifier string `env:"DEVICE_IDENTIFIER"`
	// LogFile is where the client writes its log. Empty means a "logs" file
	// next to the executable.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Queue holds the client's retry and polling policy.
type Queue struct {
	// MaxRetries is the number of consecutive poll failures after which the
	// client gives up and reports an error.
	// Env: QUEUE_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`
	// RetryBaseDelay is the first backoff delay; attempt k waits
	// RetryBaseDelay·2^(k-1).
	// Env: QUEUE_RETRY_BASE_DELAY
	RetryBaseDelay time.Duration `env:"RETRY_BASE_DELAY"`
	// DefaultPollInterval is used when the server sends no polling hint.
	// Env: QUEUE_DEFAULT_POLL_INTERVAL
	DefaultPollInterval time.Duration `env:"DEFAULT_POLL_INTERVAL"`
}

// Adapter holds the client's transport settings.
type Adapter struct {
	// HTTPAddress is the queue server address, with or without scheme
	// (e.g. "localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// APIPrefix is prepended to every request path (e.g. "/api/v1").
	// Env: ADAPTER_API_PREFIX
	APIPrefix string `env:"API_PREFIX"`
	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings of the simulator.
type Server struct {
	// HTTPAddress is the TCP address the simulator listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the simulator's storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: "postgres://" or "postgresql://" DSNs use pgx,
	// anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// ReleaseInterval is how often the release worker admits the next batch
	// of sessions.
	// Env: WORKERS_RELEASE_INTERVAL
	ReleaseInterval time.Duration `env:"RELEASE_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder(args).
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
