package fault

import (
	"errors"
	"fmt"
	"strings"
)

var _ error = (*Error)(nil)

// Error is a failure carrying exactly one Kind.
//
// Errors are created through Tag, Override, New and Newf. Re-tagging an Error
// wraps it again but keeps its original Kind, so callers can classify a
// failure with TypeOf no matter how many layers re-raised it.
type Error struct {
	Kind Kind
	Msg  string
	Err  error

	// inherited is set when Kind was taken from a tagged cause.
	inherited bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder
	if !e.inherited {
		b.WriteString(e.Kind.String())
	}
	if e.Msg != "" {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Tag wraps cause with kind. When cause already carries a kind the wrapper
// keeps that kind: the first tag wins. A nil cause produces a new error of
// the given kind.
//
//	if err != nil {
//	    return nil, fault.Tag(fault.Database, err)
//	}
func Tag(kind Kind, cause error) error {
	if cause == nil {
		return &Error{Kind: kind, Msg: "unclassified failure"}
	}
	if original, ok := KindOf(cause); ok {
		return &Error{Kind: original, Err: cause, inherited: true}
	}
	return &Error{Kind: kind, Err: cause}
}

// Override wraps cause with kind, replacing any kind cause already carries.
// It is the only way to re-classify a failure.
func Override(kind Kind, cause error) error {
	return &Error{Kind: kind, Err: cause}
}

// New returns an error of the given kind with no underlying cause.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf is New with a format string.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// KindOf returns the effective kind of err: the kind of the outermost Error
// in its chain, which equals the first kind ever assigned unless Override was
// used.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) && fe != nil {
		return fe.Kind, true
	}
	return 0, false
}

// TypeOf reports whether err is classified as kind.
func TypeOf(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// Transient reports whether err is an infrastructure failure worth retrying.
// Format failures are permanent input problems.
func Transient(err error) bool {
	return TypeOf(err, Database)
}
