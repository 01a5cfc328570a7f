package template

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying resolution failures. Callers use errors.Is to
// distinguish failure modes; the wrapped *Error carries the offending
// template and version.
var (
	// ErrDiscovery covers an unreadable or empty template root, a template
	// with no version directories, and duplicate version directories.
	ErrDiscovery = errors.New("template discovery failed")
	// ErrMalformedVersion is returned when a version directory name is not a
	// numeric major.minor.patch triple.
	ErrMalformedVersion = errors.New("malformed version")
	// ErrVersionMismatch is returned when a rule file declares a version that
	// differs from its directory name.
	ErrVersionMismatch = errors.New("version mismatch")
	// ErrUnresolvedExtends is returned when a rule file extends a template
	// that was not discovered.
	ErrUnresolvedExtends = errors.New("unresolved extends")
	// ErrCyclicInheritance is returned when the extends relation contains a
	// cycle.
	ErrCyclicInheritance = errors.New("cyclic inheritance")
)

// ErrEmptyRoot marks a readable template root that contains no template
// directories. It wraps ErrDiscovery, so errors.Is matches both; callers that
// can proceed without templates (scaffolding a first one) match it to tell an
// empty root apart from an unreadable one.
var ErrEmptyRoot = fmt.Errorf("%w: empty root", ErrDiscovery)

// Error wraps a resolution failure with the template and version it occurred
// in. Kind is always one of the sentinel errors above.
type Error struct {
	Kind     error
	Template string
	Version  string
	Msg      string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *Error) Unwrap() error { return e.Kind }

// newError builds an *Error with a formatted detail message.
func newError(kind error, tmpl, version, format string, args ...any) error {
	return &Error{
		Kind:     kind,
		Template: tmpl,
		Version:  version,
		Msg:      fmt.Sprintf(format, args...),
	}
}
