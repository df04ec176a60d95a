// Package parallelisation provides helpers for running and supervising
// blocking operations: context error determination, bounded waits and
// timeout-guarded actions.
package parallelisation

import (
	"context"
	"time"

	"github.com/ARM-software/golang-collections/collections/commonerrors"
)

// DetermineContextError determines what the context error is if any.
func DetermineContextError(ctx context.Context) error {
	err := commonerrors.ErrFromContext(ctx)
	if commonerrors.Any(err, nil) {
		return err
	}
	return commonerrors.WrapError(err, context.Cause(ctx), "")
}

// RunActionWithTimeout runs a blocking action with a timeout. The action is
// handed a context which is cancelled once the timeout is reached and must
// return promptly on cancellation. ErrTimeout is returned if the timeout was
// reached before the action completed.
func RunActionWithTimeout(blockingAction func(ctx context.Context) error, timeout time.Duration) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	channel := make(chan error, 1)
	completed := false

	go func() {
		channel <- blockingAction(ctx)
	}()

	select {
	case err = <-channel:
		completed = true
	case <-ctx.Done():
		err = DetermineContextError(ctx)
	}
	if !completed {
		// The action owns resources; wait for it to acknowledge cancellation.
		<-channel
	}
	return
}
