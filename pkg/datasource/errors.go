package datasource

import "fmt"

// SourceError reports why a descriptor could not produce template data
type SourceError struct {
	Descriptor string
	Message    string
	Cause      error
}

func (e *SourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

func sourceErrorf(descriptor string, cause error, format string, args ...interface{}) *SourceError {
	return &SourceError{
		Descriptor: descriptor,
		Message:    fmt.Sprintf(format, args...),
		Cause:      cause,
	}
}
