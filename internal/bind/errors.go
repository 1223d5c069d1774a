package bind

import "fmt"

// FatalError aborts a session: the source could not be acquired or a cursor
// could not be released.
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("fatal: %s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// StrictError aborts a session whose options turn a diagnostic into a failure.
type StrictError struct {
	Diagnostic Diagnostic
}

func (e *StrictError) Error() string {
	return "strict binding: " + e.Diagnostic.String()
}

func (e *StrictError) Unwrap() error {
	return e.Diagnostic.Err
}
