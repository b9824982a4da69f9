package search

import "fmt"

// DomainRejectionError reports that the oracle (or our own validation)
// judged the text not to be a room booking request. The reason is safe to
// show the caller.
type DomainRejectionError struct {
	Reason string
}

func (e *DomainRejectionError) Error() string {
	return fmt.Sprintf("not a room booking request: %s", e.Reason)
}

// UnparseableError reports oracle output that could not be parsed into the
// expected payload shape. Surfaced as a rejection, never as a best-effort
// guess.
type UnparseableError struct {
	Detail string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("could not understand the request: %s", e.Detail)
}

// OracleUnavailableError reports a transient oracle failure (timeout or
// transport error). Distinct from DomainRejectionError: it says nothing
// about the input.
type OracleUnavailableError struct {
	Cause error
}

func (e *OracleUnavailableError) Error() string {
	return fmt.Sprintf("language service unavailable: %v", e.Cause)
}

func (e *OracleUnavailableError) Unwrap() error {
	return e.Cause
}
