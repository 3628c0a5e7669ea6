// Package errors provides error wrapping with slog annotations so that the
// context gathered on the way up the call stack ends up in the structured logs.
package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// AnnotatedError carries a message, optional slog attributes, and the source
// location where the error was created.
type AnnotatedError struct {
	err    error
	msg    string
	attrs  []slog.Attr
	source string
}

// NewSentinel creates a sentinel error that can be annotated later with Wrap.
func NewSentinel(msg string) error {
	return &AnnotatedError{
		err:    nil,
		msg:    msg,
		attrs:  nil,
		source: callerSource(),
	}
}

// Wrap annotates err with a message and optional slog attributes.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &AnnotatedError{
		err:    err,
		msg:    msg,
		attrs:  attrs,
		source: callerSource(),
	}
}

// Error implements the error interface.
func (e *AnnotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

// Unwrap exposes the wrapped error for errors.Is and errors.As.
func (e *AnnotatedError) Unwrap() error {
	return e.err
}

// SlogError converts an error into a slog.Attr with the error message, the
// source location of the outermost annotated error, and all annotations
// gathered along the error chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []slog.Attr{slog.String("message", err.Error())}

	var (
		annotations []any
		source      string
	)
	for e := err; e != nil; e = unwrapFirst(e) {
		annotated, ok := e.(*AnnotatedError)
		if !ok {
			continue
		}
		if source == "" {
			source = annotated.source
		}
		for _, attr := range annotated.attrs {
			annotations = append(annotations, attr)
		}
	}
	if source != "" {
		attrs = append(attrs, slog.String("source", source))
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}

	return slog.Group("error", asAnys(attrs)...)
}

// unwrapFirst unwraps a single error, picking the first child of joined errors.
func unwrapFirst(err error) error {
	switch e := err.(type) {
	case interface{ Unwrap() error }:
		return e.Unwrap()
	case interface{ Unwrap() []error }:
		for _, child := range e.Unwrap() {
			if child != nil {
				return child
			}
		}
		return nil
	default:
		return nil
	}
}

func asAnys(attrs []slog.Attr) []any {
	anys := make([]any, len(attrs))
	for i, attr := range attrs {
		anys[i] = attr
	}
	return anys
}

// DecoratePanic converts a recovered panic value into an annotated error
// whose source points at the panic site.
func DecoratePanic(recovered any) error {
	return &AnnotatedError{
		err:    nil,
		msg:    fmt.Sprintf("panic: %v", recovered),
		attrs:  nil,
		source: panicSource(),
	}
}

// panicSource walks the stack for the frame that raised the panic.
func panicSource() string {
	const maxStackDepth = 32
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(1, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	sawPanic := false
	for {
		frame, more := frames.Next()
		if sawPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return filepath.Base(frame.File) + ":" + strconv.Itoa(frame.Line)
		}
		if strings.HasSuffix(frame.Function, "gopanic") {
			sawPanic = true
		}
		if !more {
			break
		}
	}
	return "unknown"
}

// callerSource resolves the file:line of the caller outside this package.
func callerSource() string {
	const skipCallerAndConstructor = 2
	_, file, line, ok := runtime.Caller(skipCallerAndConstructor)
	if !ok {
		return "unknown"
	}
	return filepath.Base(file) + ":" + strconv.Itoa(line)
}

// Re-exports so that callers don't need to import both this package and the
// standard library errors package.

// New creates a new error with the given message.
func New(msg string) error { return stderrors.New(msg) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error { return stderrors.Unwrap(err) }

// Join wraps the given errors into a single error.
func Join(errs ...error) error { return stderrors.Join(errs...) }
