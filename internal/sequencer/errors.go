package sequencer

import "fmt"

// LockedError reports an attempt to enter content the player has not
// unlocked yet.
type LockedError struct {
	Kind   string // "world", "lesson", or "boss"
	ID     string
	Reason string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("%s %s is locked: %s", e.Kind, e.ID, e.Reason)
}

// GateError reports an Advance attempt past a step whose interaction
// has not been satisfied.
type GateError struct {
	StepIndex int
	Title     string
}

func (e *GateError) Error() string {
	return fmt.Sprintf("step %d (%s) must be completed before advancing", e.StepIndex, e.Title)
}

// StateError reports a sequencer operation made in the wrong state,
// e.g. advancing a lesson that already finished.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("cannot %s: %s", e.Op, e.Reason)
}

// StepTypeError reports an interaction call against a step of the
// wrong kind, e.g. answering a practice question on a text step.
type StepTypeError struct {
	StepIndex int
	Want      string
	Got       string
}

func (e *StepTypeError) Error() string {
	return fmt.Sprintf("step %d is %s, not %s", e.StepIndex, e.Got, e.Want)
}
