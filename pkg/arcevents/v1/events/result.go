package events

import (
	"context"
	"sync"
)

// Result is the value a listener places into a request event. It settles
// exactly once, either synchronously during dispatch or later from another
// goroutine.
type Result[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// NewResult returns an unsettled Result.
func NewResult[T any]() *Result[T] {
	return &Result[T]{done: make(chan struct{})}
}

// Resolved returns a Result already settled with v.
func Resolved[T any](v T) *Result[T] {
	r := NewResult[T]()
	r.Resolve(v)
	return r
}

// Rejected returns a Result already settled with err.
func Rejected[T any](err error) *Result[T] {
	r := NewResult[T]()
	r.Reject(err)
	return r
}

// Resolve settles the result with v. It returns false if the result was
// already settled.
func (r *Result[T]) Resolve(v T) bool {
	return r.settle(v, nil)
}

// Reject settles the result with err. It returns false if the result was
// already settled.
func (r *Result[T]) Reject(err error) bool {
	var zero T
	return r.settle(zero, err)
}

func (r *Result[T]) settle(v T, err error) bool {
	settled := false
	r.once.Do(func() {
		r.value = v
		r.err = err
		settled = true
		close(r.done)
	})
	return settled
}

// Done is closed once the result settles.
func (r *Result[T]) Done() <-chan struct{} {
	return r.done
}

// Await blocks until the result settles or ctx is done. The listener's
// error is returned unmodified.
func (r *Result[T]) Await(ctx context.Context) (T, error) {
	// A settled result wins over a cancelled context.
	select {
	case <-r.done:
		return r.value, r.err
	default:
	}
	select {
	case <-r.done:
		return r.value, r.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}
