package config

import (
	"fmt"
	"time"
)

// ServerConfig is the view of [StructuredConfig] consumed by the server
// runtime. It carries only the fields the server needs and applies
// server-side defaults.
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetServerConfig loads the base config via [GetStructuredConfig], maps the
// fields relevant to the server runtime, applies defaults, and validates
// the resulting [ServerConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}

	if serverCfg.Server.RequestTimeout == 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}

	return serverCfg, serverCfg.validate()
}
