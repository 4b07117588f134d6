package appointment

import (
	"errors"
	"fmt"

	"xscheduler/models"
)

// ErrNotFound is returned when the referenced appointment does not exist.
var ErrNotFound = errors.New("appointment not found")

// ConflictError reports the records that clash with a requested window,
// so validation errors can list them.
type ConflictError struct {
	Conflicts []models.Appointment `json:"conflicts"`
	Blocked   []models.BlockedTime `json:"blockedTimes"`
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("requested time conflicts with %d appointment(s) and %d blocked period(s)",
		len(e.Conflicts), len(e.Blocked))
}
