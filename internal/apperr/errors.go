package apperr

import "errors"

// ConfigError reports a scoring session that cannot start: an unknown
// metric, an unset aggregate mode or a malformed relevant-count map.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func NewConfig(field, msg string) *ConfigError {
	return &ConfigError{Field: field, Message: msg}
}

func NewConfigWrap(field, msg string, err error) *ConfigError {
	return &ConfigError{Field: field, Message: msg, Err: err}
}

// IsConfig reports whether err carries a ConfigError anywhere in its chain.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}
