package config

import (
	"errors"
	"fmt"
)

var (
	ErrNoCommand = errors.New("A command is required to run")

	// ErrCredentialsUnset means no source defined one of the credentials at all.
	ErrCredentialsUnset = errors.New("The environment variables 'datadog_api_key' and 'datadog_app_key' must be set unless using --dry-run")
	ErrAPIKeyEmpty      = errors.New("The environment variable 'datadog_api_key' must be set unless using --dry-run")
	ErrAppKeyEmpty      = errors.New("The environment variable 'datadog_app_key' must be set unless using --dry-run")
)

// ConfigurationError is a fatal problem with the resolved settings. The CLI
// reports it together with the usage text.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string { return e.Err.Error() }
func (e *ConfigurationError) Unwrap() error { return e.Err }

// DocumentError reports a configuration document that exists but could not
// be read or parsed. It never aborts resolution.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("config document %s: %v", e.Path, e.Err)
}
func (e *DocumentError) Unwrap() error { return e.Err }
