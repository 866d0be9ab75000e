// Package core provides the Result envelope returned by command and
// query handlers.
package core

// Unit is the empty value carried by command results.
type Unit struct{}

// Result is a tagged success/failure outcome. Exactly one of the two
// states holds. A success may carry no value; the HTTP boundary treats
// that as "not found".
type Result[T any] struct {
	ok      bool
	present bool
	value   T
	err     string
}

// Ok returns a successful Result carrying v.
func Ok[T any](v T) Result[T] { return Result[T]{ok: true, present: true, value: v} }

// Empty returns a successful Result with no value.
func Empty[T any]() Result[T] { return Result[T]{ok: true} }

// Fail returns a failed Result with the given message.
func Fail[T any](msg string) Result[T] { return Result[T]{err: msg} }

func (r Result[T]) IsSuccess() bool { return r.ok }
func (r Result[T]) HasValue() bool  { return r.present }
func (r Result[T]) Value() T        { return r.value }
func (r Result[T]) Err() string     { return r.err }

// ValueAny exposes the value without the type parameter so the HTTP
// boundary can serialize any Result through a single interface.
func (r Result[T]) ValueAny() any { return r.value }
