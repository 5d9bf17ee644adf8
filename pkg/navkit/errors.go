package navkit

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a config file that parsed but cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// ConfigError represents a failure loading or applying a navkit config file.
type ConfigError struct {
	Op  string // Operation that failed (e.g., "read", "decode", "load_messages")
	Err error  // Underlying error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navkit: config: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("navkit: config: %s", e.Op)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new config error.
func NewConfigError(op string, err error) *ConfigError {
	return &ConfigError{Op: op, Err: err}
}

// IsConfigError checks if an error is a config error.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return errors.As(err, &cfgErr)
}
