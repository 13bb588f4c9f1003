// Package wrap provides function decorators: retry with backoff, TTL
// memoization, rate limiting, circuit breaking, and call timing.
package wrap

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ghetzel/go-stockutil/log"
	gocache "github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// RetryOptions controls Retry behavior.
type RetryOptions struct {
	// maximum number of attempts (default 3)
	Attempts int

	// delay before the first retry (default 250ms)
	Delay time.Duration

	// multiplier applied to the delay after each attempt (default 2.0)
	Backoff float64

	// upper bound on the per-attempt delay
	MaxDelay time.Duration

	// when set, only errors for which this returns true are retried
	RetryIf func(error) bool
}

func (self *RetryOptions) defaults() {
	if self.Attempts <= 0 {
		self.Attempts = 3
	}

	if self.Delay <= 0 {
		self.Delay = 250 * time.Millisecond
	}

	if self.Backoff <= 0 {
		self.Backoff = 2.0
	}
}

// Retry calls fn until it succeeds, the attempt budget is exhausted, or the
// context is canceled, sleeping a growing delay between attempts.  The last
// error is returned.
func Retry(ctx context.Context, options *RetryOptions, fn func(ctx context.Context) error) error {
	if options == nil {
		options = new(RetryOptions)
	}

	options.defaults()

	delay := options.Delay
	var lastErr error

	for attempt := 1; attempt <= options.Attempts; attempt++ {
		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}

		if options.RetryIf != nil && !options.RetryIf(lastErr) {
			return lastErr
		}

		if attempt == options.Attempts {
			break
		}

		log.Debugf("retry: attempt %d/%d failed: %v", attempt, options.Attempts, lastErr)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay = time.Duration(float64(delay) * options.Backoff)

		if options.MaxDelay > 0 && delay > options.MaxDelay {
			delay = options.MaxDelay
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", options.Attempts, lastErr)
}

// Memoize wraps a keyed function with a TTL cache: results (successes only)
// are cached per key for the given lifetime.
func Memoize[T any](ttl time.Duration, fn func(key string) (T, error)) func(key string) (T, error) {
	store := gocache.New(ttl, 2*ttl)
	var lock sync.Mutex

	return func(key string) (T, error) {
		lock.Lock()
		defer lock.Unlock()

		if cached, ok := store.Get(key); ok {
			return cached.(T), nil
		}

		value, err := fn(key)

		if err == nil {
			store.Set(key, value, gocache.DefaultExpiration)
		}

		return value, err
	}
}

// RateLimited wraps fn so that calls proceed at most perSecond times per
// second with the given burst, blocking (context-aware) until a slot is
// available.
func RateLimited(perSecond float64, burst int, fn func(ctx context.Context) error) func(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(ctx context.Context) error {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		return fn(ctx)
	}
}

// Breaker wraps fn in a named circuit breaker: after repeated failures the
// circuit opens and calls fail fast until the cool-off elapses.
func Breaker(name string, fn func() (interface{}, error)) func() (interface{}, error) {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: name,
	})

	return func() (interface{}, error) {
		return breaker.Execute(fn)
	}
}

// Timed wraps fn so that every call logs its elapsed wall time at debug level
// under the given label.
func Timed(label string, fn func()) func() {
	return func() {
		start := time.Now()
		fn()
		log.Debugf("%s took %v", label, time.Since(start))
	}
}

// UntilSuccess returns a function that calls fn until it first succeeds, then
// returns the cached result forever after without calling fn again.
func UntilSuccess[T any](fn func() (T, error)) func() (T, error) {
	var lock sync.Mutex
	var done bool
	var value T

	return func() (T, error) {
		lock.Lock()
		defer lock.Unlock()

		if done {
			return value, nil
		}

		v, err := fn()

		if err == nil {
			value = v
			done = true
		}

		return v, err
	}
}
