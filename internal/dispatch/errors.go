package dispatch

import "fmt"

// PreconditionError rejects a configuration in which every argument is
// individually valid but the combination cannot run.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
