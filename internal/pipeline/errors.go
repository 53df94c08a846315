package pipeline

import "fmt"

// ConfigurationError represents invalid analysis configuration: malformed
// component weights or an unknown ATS platform. It is fatal and raised
// before any scoring happens.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid configuration: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid configuration: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
