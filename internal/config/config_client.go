package config

import (
	"fmt"
	"time"
)

// ClientApp holds the client's identity settings.
type ClientApp struct {
	// ActivityID is the activity whose queue the client joins.
	ActivityID string
	// UserIdentifier and DeviceIdentifier override the host-derived identity
	// when both are set.
	UserIdentifier   string
	DeviceIdentifier string
	// LogFile is the client log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the queue server address.
	HTTPAddress string
	// APIPrefix is prepended to every request path.
	APIPrefix string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientQueue holds the queue client's retry and polling policy.
type ClientQueue struct {
	MaxRetries          int
	RetryBaseDelay      time.Duration
	DefaultPollInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Queue   ClientQueue
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.ClientConfig()
	return clientCfg, clientCfg.validate()
}

// ClientConfig projects the client-relevant fields of cfg.
func (cfg *StructuredConfig) ClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			ActivityID:       cfg.App.ActivityID,
			UserIdentifier:   cfg.App.UserIdentifier,
			DeviceIdentifier: cfg.App.DeviceIdentifier,
			LogFile:          cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			APIPrefix:      cfg.Adapter.APIPrefix,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Queue: ClientQueue{
			MaxRetries:          cfg.Queue.MaxRetries,
			RetryBaseDelay:      cfg.Queue.RetryBaseDelay,
			DefaultPollInterval: cfg.Queue.DefaultPollInterval,
		},
	}
}
