package core

import "fmt"

// ValidationError represents a configuration validation failure.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LockError represents a file locking error.
type LockError struct {
	Operation string
	Message   string
	Err       error
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock %s: %s", e.Operation, e.Message)
}

func (e *LockError) Unwrap() error {
	return e.Err
}

// StoreError represents a questionnaire or session store failure.
type StoreError struct {
	Operation string
	Path      string
	Message   string
	Err       error
}

func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("store %s %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("store %s: %s", e.Operation, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
