package config

import "fmt"

// ServerConfig is the simulator configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Server  Server
	Storage Storage
	Workers Workers
}

// GetServerConfig builds and validates the simulator config view from the
// merged structured configuration.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := cfg.ServerConfig()
	return serverCfg, serverCfg.validate()
}

// ServerConfig projects the simulator-relevant fields of cfg.
func (cfg *StructuredConfig) ServerConfig() *ServerConfig {
	return &ServerConfig{
		Server:  cfg.Server,
		Storage: cfg.Storage,
		Workers: cfg.Workers,
	}
}
