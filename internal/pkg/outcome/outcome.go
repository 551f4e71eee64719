// Package outcome provides a success-or-typed-failure container for expected
// domain failures. Workflow handlers return a Result next to a plain error:
// the Result carries domain validation failures with a stable machine-readable
// code, the error return is reserved for infrastructure failures that abort
// the request.
package outcome

import "fmt"

// Error is a typed domain failure, safe to show to a caller.
// Code is a stable machine-readable identifier such as "driver_not_found";
// Message is a human-readable explanation.
type Error struct {
	Code    string
	Message string
}

// NewError creates a typed domain failure.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Result holds either a success value or a typed domain failure, never both.
// The zero value is not meaningful; construct results via Success or Failure.
type Result[T any] struct {
	value T
	err   *Error
	ok    bool
}

// Success wraps a value into a successful result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Failure wraps a typed domain failure into a failed result.
// A nil error is replaced with a generic failure rather than panicking.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		err = NewError("unknown", "unspecified failure")
	}
	return Result[T]{err: err}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.ok
}

// IsFailure reports whether the result holds a domain failure.
func (r Result[T]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value. For a failed result it returns the zero
// value; check IsSuccess first or use Match.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the typed failure, or nil for a successful result.
func (r Result[T]) Err() *Error {
	return r.err
}

// Match invokes exactly one of the two callbacks depending on the result state.
func (r Result[T]) Match(onSuccess func(T), onFailure func(*Error)) {
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

// Map transforms the success value, carrying a failure through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.IsFailure() {
		return Failure[U](r.err)
	}
	return Success(fn(r.value))
}
