package tablefile

import "sync"

// Future is a deferred result: it completes exactly once with a value or
// an error. There is no cancellation and no timeout; once issued, the
// underlying operation runs to completion or failure.
type Future[T any] struct {
	once sync.Once
	done chan struct{}
	val  T
	err  error
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

func (f *Future[T]) complete(val T, err error) {
	f.once.Do(func() {
		f.val = val
		f.err = err
		close(f.done)
	})
}

// Done returns a channel closed when the future has completed.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future completes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.val, f.err
}

// Wait blocks until the future completes and returns only its error.
func (f *Future[T]) Wait() error {
	<-f.done
	return f.err
}

// deferred runs fn in its own goroutine and completes the returned future
// with fn's outcome. A failure completes the future in a failed state; it
// is never re-thrown across the goroutine boundary.
func deferred[T any](fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	go func() {
		f.complete(fn())
	}()
	return f
}

// failed returns a future already completed with err.
func failed[T any](err error) *Future[T] {
	f := newFuture[T]()
	var zero T
	f.complete(zero, err)
	return f
}
