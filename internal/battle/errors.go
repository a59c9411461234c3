package battle

import "fmt"

// StateError reports a battle operation made in the wrong state, e.g.
// answering after the last question.
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("battle %s: %s", e.Op, e.Reason)
}

// ConfigurationError reports content that cannot support the requested
// fight, e.g. an exam pool smaller than the sample size.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "battle configuration: " + e.Reason
}
