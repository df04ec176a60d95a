package commonerrors

import (
	"context"
	"errors"
)

// ConvertContextError converts a context error into one of the module's
// common errors: context.DeadlineExceeded becomes ErrTimeout and
// context.Canceled becomes ErrCancelled.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
		return WrapError(ErrTimeout, err, "")
	}
	if errors.Is(err, context.Canceled) && !errors.Is(err, ErrCancelled) {
		return WrapError(ErrCancelled, err, "")
	}
	return err
}

// ErrFromContext returns the error the context holds, if any, converted into
// a common error.
func ErrFromContext(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}
