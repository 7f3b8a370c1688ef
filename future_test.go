package globus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFutureAwaitReturnsOutcome(t *testing.T) {
	want := &Result{Code: CodeAccepted}
	f := Async(context.Background(), func(context.Context) (*Result, error) {
		return want, nil
	})

	got, err := f.Await(context.Background())
	require.NoError(t, err)
	require.Same(t, want, got)

	select {
	case <-f.Done():
	default:
		t.Fatal("future should be done")
	}
}

func TestFutureAwaitPropagatesError(t *testing.T) {
	f := Async(context.Background(), func(context.Context) (*Result, error) {
		return nil, ErrNotImplemented
	})
	_, err := f.Await(context.Background())
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestFutureAwaitStopsOnContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	f := Async(context.Background(), func(context.Context) (*Result, error) {
		<-release
		return nil, nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := f.Await(ctx)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}
