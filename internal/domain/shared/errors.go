package shared

import "fmt"

// Kind is a stable error taxonomy code, switchable by callers without string
// matching (spec §4.3's TargetNotFound/InvalidTargetType/... taxonomy and the
// per-order error kinds of spec §6).
type Kind string

// DomainError is the base validation-error type for all recoverable engine
// failures. It is never used for invariant violations — those fail fast via
// panic per spec §7.
type DomainError struct {
	kind    Kind
	message string
}

func (e *DomainError) Error() string { return e.message }

// Kind returns the stable taxonomy code for this error.
func (e *DomainError) Kind() Kind { return e.kind }

// NewDomainError builds a DomainError with the given taxonomy kind.
func NewDomainError(kind Kind, format string, args ...interface{}) *DomainError {
	return &DomainError{kind: kind, message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from any error produced by this package, or ""
// if the error isn't one of ours.
func KindOf(err error) Kind {
	var de *DomainError
	if ok := asDomainError(err, &de); ok {
		return de.kind
	}
	return ""
}

func asDomainError(err error, target **DomainError) bool {
	de, ok := err.(*DomainError)
	if ok {
		*target = de
	}
	return ok
}

// InvariantViolation panics to signal a fatal, unrecoverable bug: an
// out-of-range index, a missing referenced entity mid-phase, or a failed
// attribute clamp. Per spec §7 these are never returned as errors.
func InvariantViolation(format string, args ...interface{}) {
	panic(fmt.Sprintf("invariant violation: "+format, args...))
}
