package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{ActivityID: "demo"},
		Adapter: ClientAdapter{
			HTTPAddress:    "localhost:8080",
			APIPrefix:      "/api/v1",
			RequestTimeout: time.Second,
		},
		Queue: ClientQueue{
			MaxRetries:          3,
			RetryBaseDelay:      time.Second,
			DefaultPollInterval: 2 * time.Second,
		},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*ClientConfig) {}},
		{name: "missing activity", mutate: func(c *ClientConfig) { c.App.ActivityID = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "only user identifier", mutate: func(c *ClientConfig) { c.App.UserIdentifier = "u" }, wantErr: ErrInvalidAppConfigs},
		{name: "both identifiers", mutate: func(c *ClientConfig) {
			c.App.UserIdentifier = "u"
			c.App.DeviceIdentifier = "d"
		}},
		{name: "missing address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero retries", mutate: func(c *ClientConfig) { c.Queue.MaxRetries = 0 }, wantErr: ErrInvalidQueueConfigs},
		{name: "retries at limit", mutate: func(c *ClientConfig) { c.Queue.MaxRetries = MaxQueueRetries }},
		{name: "retries above limit", mutate: func(c *ClientConfig) { c.Queue.MaxRetries = 64 }, wantErr: ErrInvalidQueueConfigs},
		{name: "zero base delay", mutate: func(c *ClientConfig) { c.Queue.RetryBaseDelay = 0 }, wantErr: ErrInvalidQueueConfigs},
		{name: "zero poll interval", mutate: func(c *ClientConfig) { c.Queue.DefaultPollInterval = 0 }, wantErr: ErrInvalidQueueConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			Server:  Server{HTTPAddress: ":8080", RequestTimeout: time.Second},
			Storage: Storage{DB: DB{DSN: "file.db"}},
			Workers: Workers{ReleaseInterval: time.Second},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Workers.ReleaseInterval = -time.Second
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
