package roadmap

import (
	"errors"
	"fmt"
)

// ErrEmptySkillSet is returned when roadmap generation is requested with
// no skills. Rejected before any oracle call.
var ErrEmptySkillSet = errors.New("at least one skill is required")

// ErrRoadmapNotFound is returned when a delete targets a roadmap that
// does not exist or belongs to another owner. The two cases are
// deliberately indistinguishable so existence of another owner's rows is
// never revealed.
var ErrRoadmapNotFound = errors.New("roadmap not found")

// StoreError indicates a persistence failure. Nothing is reported as
// saved to the caller unless the store confirmed the write.
type StoreError struct {
	Op    string
	Cause error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("roadmap store %s failed: %v", e.Op, e.Cause)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}
