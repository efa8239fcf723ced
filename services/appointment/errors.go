package appointment

import (
	"errors"
	"fmt"

	"github.com/cryptoexpertssss/gobeauty-mobile/models"
)

// ErrNotFound is returned when an operation references an unknown appointment ID.
var ErrNotFound = errors.New("appointment not found")

// ErrUnauthorized is returned when the caller's identity does not permit the
// requested operation.
var ErrUnauthorized = errors.New("operation not permitted for this identity")

// ValidationError reports a missing or malformed booking field. The operation
// was rejected before any state change.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: %s is required", e.Field)
}

// InvalidTransitionError reports a status update outside the allowed
// lifecycle graph. The appointment's status is unchanged.
type InvalidTransitionError struct {
	From models.AppointmentStatus
	To   models.AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition %s -> %s", e.From, e.To)
}

// StorageError reports a key-value engine failure. In-memory state has been
// rolled back to the last persisted state, so callers never observe a
// mutation that was not durably written.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
