package globus

import "context"

// Future is the pending result of an operation started with Async.
type Future struct {
	done   chan struct{}
	result *Result
	err    error
}

// Async runs fn on its own goroutine and returns immediately. Typical use:
//
//	f := globus.Async(ctx, func(ctx context.Context) (*globus.Result, error) {
//		return client.GetEndpoint(ctx, token, globus.EndpointOptions{EndpointID: id})
//	})
//	res, err := f.Await(ctx)
func Async(ctx context.Context, fn func(context.Context) (*Result, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.result, f.err = fn(ctx)
	}()
	return f
}

// Done is closed once the operation has finished.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the operation finishes or ctx is done. Cancelling ctx
// here only stops waiting; the request itself follows the context given to Async.
func (f *Future) Await(ctx context.Context) (*Result, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
