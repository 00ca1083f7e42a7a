package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the sentinel for all configuration errors.
var ErrInvalidConfig = errors.New("invalid configuration")

// ConfigurationError reports an invalid configuration option.
// It wraps ErrInvalidConfig.
type ConfigurationError struct {
	Field  string // name of the offending option, e.g. "separator"
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("twmerge: invalid configuration of %s: %s", e.Field, e.Reason)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigurationError) Unwrap() error {
	return ErrInvalidConfig
}

func invalid(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
