// Package errors provides structured error reporting for the appbase library.
//
// Nothing in appbase returns errors to callers for routine policy decisions
// (duplicate countdown registrations, unknown cancellations); those are
// absorbed locally and surfaced through the global handler instead. Hosts
// that want the diagnostics routed into their own logging install a handler
// with [SetHandler].
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindCountdown indicates a countdown registry policy violation,
	// such as a duplicate registration.
	KindCountdown
	// KindTheme indicates a theme bundle load or resolution failure.
	KindTheme
	// KindLifecycle indicates a lifecycle orchestration error.
	KindLifecycle
	// KindParsing indicates a data parsing failure.
	KindParsing
	// KindInit indicates an initialization error.
	KindInit
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindCountdown:
		return "countdown"
	case KindTheme:
		return "theme"
	case KindLifecycle:
		return "lifecycle"
	case KindParsing:
		return "parsing"
	case KindInit:
		return "init"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// AppError represents a structured error in the appbase library.
type AppError struct {
	// Op is the operation that failed (e.g., "countdown.Register").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// ID is the subscriber or palette identifier involved, if applicable.
	ID string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s [%s] id=%s: %v", e.Op, e.Kind, e.ID, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "countdown.tick").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ParseError represents a failure to parse configuration data.
type ParseError struct {
	// Source names the document or field being parsed.
	Source string
	// DataType is the expected type name.
	DataType string
	// Got is the actual data received.
	Got any
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s from %s: got %T", e.DataType, e.Source, e.Got)
}

// ErrorHandler receives errors reported by the appbase library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *AppError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
