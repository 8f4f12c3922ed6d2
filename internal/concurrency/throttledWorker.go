package concurrency

import (
	"context"
	"errors"
	"time"

	"github.com/wheelibin/ledpanel/internal/constants"
)

// ThrottledWorker runs a job per argument, one at a time, at most once per interval
type ThrottledWorker[T any] struct {
	interval    time.Duration
	jobCallback func(ctx context.Context, arg T) error
}

func NewThrottledWorker[T any](interval time.Duration, jobCallback func(ctx context.Context, arg T) error) ThrottledWorker[T] {
	if interval <= 0 {
		interval = constants.ThrottleInterval
	}
	return ThrottledWorker[T]{interval: interval, jobCallback: jobCallback}
}

// Run processes every argument and returns the joined job errors. Arguments not yet started
// when ctx is cancelled are skipped.
func (w *ThrottledWorker[T]) Run(ctx context.Context, jobArgs []T) error {

	jobArgsChannel := make(chan T, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	var errs []error
	first := true
	for arg := range jobArgsChannel {
		if !first {
			select {
			case <-ctx.Done():
				return errors.Join(append(errs, ctx.Err())...)
			case <-limiter.C:
			}
		}
		first = false
		if err := w.jobCallback(ctx, arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
