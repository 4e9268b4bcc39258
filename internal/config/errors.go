package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidClientConfigs indicates invalid CLI client settings
	// (for example, a missing base URL or zero request timeout).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a negative bcrypt cost).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
