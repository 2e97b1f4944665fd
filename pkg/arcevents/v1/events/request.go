package events

import (
	"context"
	"sync"
)

// Request is the result slot embedded by request-style events. It starts
// empty; a listener fills it during dispatch.
type Request[T any] struct {
	mu     sync.Mutex
	result *Result[T]
}

// SetResult attaches res to the event, replacing any earlier result.
func (r *Request[T]) SetResult(res *Result[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.result = res
}

// Resolve attaches a result settled with v.
func (r *Request[T]) Resolve(v T) {
	r.SetResult(Resolved(v))
}

// Reject attaches a result settled with err.
func (r *Request[T]) Reject(err error) {
	r.SetResult(Rejected[T](err))
}

// Result returns the attached result, or nil when no listener set one.
func (r *Request[T]) Result() *Result[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.result
}

// Requester is an event carrying a result slot of type T.
type Requester[T any] interface {
	Event
	Result() *Result[T]
}

// Call dispatches req on target and awaits the result a listener attached.
// When no listener attached one, Call returns the zero value and a nil
// error: a missing handler is not an error at this layer.
func Call[T any](ctx context.Context, target Target, req Requester[T]) (T, error) {
	target.Dispatch(ctx, req)
	res := req.Result()
	if res == nil {
		var zero T
		return zero, nil
	}
	return res.Await(ctx)
}

// Answered reports whether a listener attached a result.
func (r *Request[T]) Answered() bool {
	return r.Result() != nil
}

// Answerer is implemented by every event embedding a Request, whatever its
// result type. The dispatcher uses it to count unanswered requests.
type Answerer interface {
	Answered() bool
}
