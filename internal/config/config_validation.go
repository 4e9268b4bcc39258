// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Semenov

package config

// validate checks that the merged [StructuredConfig] is internally
// consistent. Role-specific requirements (server vs CLI client) are
// enforced by [GetServerConfig] and [GetClientConfig] on their mapped
// views, so the shared container itself stays permissive.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.BcryptCost < 0 {
		return ErrInvalidAppConfigs
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

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
