package xioca

import "context"

// Call — запрос, выполняющийся в фоне. Результат забирается через Wait.
type Call[T any] struct {
	done chan struct{}
	val  T
	err  error
}

func newCall[T any](fn func() (T, error)) *Call[T] {
	c := &Call[T]{done: make(chan struct{})}
	go func() {
		defer close(c.done)
		c.val, c.err = fn()
	}()
	return c
}

// Done closes once the result is available.
func (c *Call[T]) Done() <-chan struct{} { return c.done }

// Wait blocks until the call completes or ctx is cancelled. Cancelling the
// wait does not abort the in-flight HTTP request; it finishes in the
// background and its result is discarded.
func (c *Call[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case <-c.done:
		return c.val, c.err
	}
}
