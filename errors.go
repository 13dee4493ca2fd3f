package beca

import (
	"errors"
	"fmt"
)

// ========================================
// Core Error Values (Sentinel Errors)
// ========================================

var (
	// ErrNilContext is returned when CreateDependencies is given a nil context.
	ErrNilContext = errors.New("context cannot be nil")

	// ErrNilConnector is returned when WithConnector is given nil.
	ErrNilConnector = errors.New("connector cannot be nil")

	// ErrClosed is returned by Close after the connection was already closed.
	ErrClosed = errors.New("dependencies have been closed")

	// ErrResourceNotBuilt is returned when the built graph is missing a
	// recognized resource.
	ErrResourceNotBuilt = errors.New("resource not built")
)

var (
	_ error = UnknownResourceError{}
	_ error = ModuleError{}
	_ error = DisposalError{}
)

// ========================================
// Typed Errors for Rich Context
// ========================================

// UnknownResourceError indicates a name outside the recognized resource set.
// Selection never returns it: unknown names are dropped there.
type UnknownResourceError struct {
	Name string
}

func (e UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown resource: %q", e.Name)
}

// ModuleError wraps errors from registering a module's providers. It marks a
// wiring mistake, never a failure to build a resource.
type ModuleError struct {
	Module string
	Cause  error
}

func (e ModuleError) Error() string {
	return fmt.Sprintf("module %q: %v", e.Module, e.Cause)
}

func (e ModuleError) Unwrap() error {
	return e.Cause
}

// DisposalError is returned when closing the connection fails.
type DisposalError struct {
	Resource ResourceName
	Cause    error
}

func (e DisposalError) Error() string {
	return fmt.Sprintf("%s disposal failed: %v", e.Resource, e.Cause)
}

func (e DisposalError) Unwrap() error {
	return e.Cause
}
