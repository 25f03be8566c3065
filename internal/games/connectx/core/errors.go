package core

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is wrapped by every SnapshotError.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SnapshotError explains why LoadSnapshot rejected its input.
type SnapshotError struct {
	Code    string
	Message string
	Err     error // underlying cause, if any
}

func (e *SnapshotError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("snapshot [%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("snapshot [%s] %s", e.Code, e.Message)
}

// Is matches ErrInvalidSnapshot.
func (e *SnapshotError) Is(target error) bool {
	return target == ErrInvalidSnapshot
}

func (e *SnapshotError) Unwrap() error {
	return e.Err
}

func snapshotErr(code, format string, args ...any) error {
	return &SnapshotError{Code: code, Message: fmt.Sprintf(format, args...)}
}
