package medication

import (
	"errors"
	"fmt"
)

var (
	// ErrStorageFault is matched by every persistence failure.
	ErrStorageFault = errors.New("storage fault")
	// ErrValidationRejected is matched by every draft validation failure.
	ErrValidationRejected = errors.New("validation rejected")
	// ErrNotFound is returned when an update targets an id that does not exist.
	ErrNotFound = errors.New("medication not found")
)

// ValidationError represents a validation error with a field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

// Is reports ErrValidationRejected as a match so callers can test the kind.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationRejected
}

// StorageFault wraps an error raised by the underlying persistence layer.
type StorageFault struct {
	Op  string
	Err error
}

func (e *StorageFault) Error() string {
	return fmt.Sprintf("storage fault during %s: %v", e.Op, e.Err)
}

func (e *StorageFault) Unwrap() error {
	return e.Err
}

// Is reports ErrStorageFault as a match so callers can test the kind.
func (e *StorageFault) Is(target error) bool {
	return target == ErrStorageFault
}

// WrapStorage turns err into a *StorageFault for op. Nil stays nil.
func WrapStorage(op string, err error) error {
	if err == nil {
		return nil
	}
	var fault *StorageFault
	if errors.As(err, &fault) {
		return err
	}
	return &StorageFault{Op: op, Err: err}
}

// WrapError wraps an error with additional context.
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
