package taskpool

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Map applies fn to every input with at most limit invocations in flight,
// returning outputs in input order.  The first error cancels the remaining
// work and is returned.
func Map[In any, Out any](ctx context.Context, limit int, inputs []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	if limit <= 0 {
		limit = 1
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(limit)

	outputs := make([]Out, len(inputs))

	for i, input := range inputs {
		i, input := i, input

		group.Go(func() error {
			if out, err := fn(ctx, input); err == nil {
				outputs[i] = out
				return nil
			} else {
				return err
			}
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return outputs, nil
}

// Each applies fn to every input with at most limit invocations in flight.
// Unlike Map, every input is attempted even after a failure; all errors are
// aggregated into the returned slice.
func Each[In any](ctx context.Context, limit int, inputs []In, fn func(context.Context, In) error) []error {
	if limit <= 0 {
		limit = 1
	}

	sem := semaphore.NewWeighted(int64(limit))
	errchan := make(chan error, len(inputs))

	for _, input := range inputs {
		if err := sem.Acquire(ctx, 1); err != nil {
			errchan <- err
			continue
		}

		go func(input In) {
			defer sem.Release(1)

			if err := fn(ctx, input); err != nil {
				errchan <- err
			}
		}(input)
	}

	// wait for all outstanding workers
	if err := sem.Acquire(context.Background(), int64(limit)); err != nil {
		errchan <- err
	}

	close(errchan)

	var errs []error

	for err := range errchan {
		errs = append(errs, err)
	}

	return errs
}
