package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations accept Go duration strings ("1s") or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		ActivityID       string `json:"activity_id"`
		UserIdentifier   string `json:"user_identifier"`
		DeviceIdentifier string `json:"device_identifier"`
		LogFile          string `json:"log_file"`
	} `json:"app,omitempty"`

	Queue struct {
		MaxRetries          int      `json:"max_retries"`
		RetryBaseDelay      Duration `json:"retry_base_delay"`
		DefaultPollInterval Duration `json:"default_poll_interval"`
	} `json:"queue,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		APIPrefix      string   `json:"api_prefix"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		ReleaseInterval Duration `json:"release_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ActivityID:       jsonCfg.App.ActivityID,
			UserIdentifier:   jsonCfg.App.UserIdentifier,
			DeviceIdentifier: jsonCfg.App.DeviceIdentifier,
			LogFile:          jsonCfg.App.LogFile,
		},
		Queue: Queue{
			MaxRetries:          jsonCfg.Queue.MaxRetries,
			RetryBaseDelay:      time.Duration(jsonCfg.Queue.RetryBaseDelay),
			DefaultPollInterval: time.Duration(jsonCfg.Queue.DefaultPollInterval),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			APIPrefix:      jsonCfg.Adapter.APIPrefix,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			ReleaseInterval: time.Duration(jsonCfg.Workers.ReleaseInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case nil:
		return nil
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
