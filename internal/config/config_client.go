package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] consumed by the
// command-line API client.
type ClientConfig struct {
	// BaseURL is the root URL of the chat backend.
	BaseURL string

	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// GetClientConfig loads the base config via [GetStructuredConfig], maps only
// the fields relevant to the CLI client, applies defaults, and validates the
// resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		BaseURL:        cfg.Client.BaseURL,
		RequestTimeout: cfg.Client.RequestTimeout,
	}

	if clientCfg.BaseURL == "" {
		clientCfg.BaseURL = "http://localhost:8080"
	}
	if clientCfg.RequestTimeout == 0 {
		clientCfg.RequestTimeout = 15 * time.Second
	}

	return clientCfg, clientCfg.validate()
}
