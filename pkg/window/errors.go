package window

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is returned when options cannot be resolved into a
// Config. Check for it with errors.Is.
var ErrInvalidConfiguration = errors.New("kaminari: invalid configuration")

// ConfigError names the option that was rejected.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s=%q: %s", ErrInvalidConfiguration, e.Field, e.Value, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidConfiguration) hold.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

func invalidf(field string, value any, format string, args ...any) error {
	return &ConfigError{
		Field:  field,
		Value:  fmt.Sprint(value),
		Reason: fmt.Sprintf(format, args...),
	}
}
