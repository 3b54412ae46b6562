package instance

import "fmt"

// ReentrancyError is returned by Instantiate when a node already in the
// Instantiating state is reentered (spec §4.9: "Reentrant instantiate():
// fatal error naming the node"). This is the one instantiation failure
// that unwinds to the caller as a Go error rather than as a diagnostic,
// since the graph cannot make forward progress on a node instantiating
// itself.
type ReentrancyError struct {
	Name string
}

func (e *ReentrancyError) Error() string {
	return fmt.Sprintf("instance: reentrant instantiate() on %q", e.Name)
}
