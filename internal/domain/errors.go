package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidImage            = errors.New("image must be non-empty base64")
	ErrImageTooLarge           = errors.New("image exceeds maximum allowed size")
	ErrUnsupportedExportFormat = errors.New("unsupported export format")
)

// ConfigurationError means a required setting, such as the inference
// credential, is missing. It is returned before any network call.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// ServiceError wraps a transport or service level failure from the
// inference provider (network, auth, quota, timeout, cancellation).
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s inference call failed: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ResponseFormatError means the provider returned text that is not valid
// JSON or does not match the extraction shape. Raw holds the text as received.
type ResponseFormatError struct {
	Raw string
	Err error
}

func (e *ResponseFormatError) Error() string {
	return fmt.Sprintf("invalid model response: %v", e.Err)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Err
}
