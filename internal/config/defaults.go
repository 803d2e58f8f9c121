package config

import "time"

// Defaults applied before any other source.
const (
	DefaultMaxRetries           = 3
	MaxQueueRetries             = 20
	DefaultRetryBaseDelay       = time.Second
	DefaultPollInterval         = 2 * time.Second
	DefaultAPIPrefix            = "/api/v1"
	DefaultAdapterAddress       = "localhost:8080"
	DefaultRequestTimeout       = 10 * time.Second
	DefaultServerAddress        = "localhost:8080"
	DefaultServerRequestTimeout = 30 * time.Second
	DefaultDSN                  = "waitroom.db"
	DefaultReleaseInterval      = time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Queue: Queue{
			MaxRetries:          DefaultMaxRetries,
			RetryBaseDelay:      DefaultRetryBaseDelay,
			DefaultPollInterval: DefaultPollInterval,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			APIPrefix:      DefaultAPIPrefix,
			RequestTimeout: DefaultRequestTimeout,
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{ReleaseInterval: DefaultReleaseInterval},
	}
}
