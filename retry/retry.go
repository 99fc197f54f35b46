// Package retry provides context based retry functionality for functions.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrAbort is returned when retrying an operation will not result in a
// different outcome.
var ErrAbort = errors.New("operation can not be completed")

// Options for retry.
type Options struct {
	delay         time.Duration
	backoffFactor float64
	maxRetries    int
	continueOnErr func(error) bool
}

// NewOptions returns a new Options with the given options applied.
func NewOptions(opts ...Option) Options {
	options := Options{
		delay: 2 * time.Second,
		continueOnErr: func(err error) bool {
			return !errors.Is(err, ErrAbort)
		},
		backoffFactor: 1.0,
	}

	for _, opt := range opts {
		opt(&options)
	}
	return options
}

// Option is a functional option function for Options.
type Option func(*Options)

// Delay is a functional option that sets the delay between retries. The
// default is 2 seconds.
func Delay(d time.Duration) Option {
	return func(o *Options) {
		o.delay = d
	}
}

// MaxRetries is a functional option that sets the maximum number of attempts.
// The default is to retry until the context is done or canceled.
func MaxRetries(n int) Option {
	return func(o *Options) {
		o.maxRetries = n
	}
}

// Backoff is a functional option that sets the backoff factor. After each
// failed attempt the delay is multiplied by this factor, so a factor of 2.0
// doubles the wait between attempts. The default of 1.0 keeps the delay
// constant.
func Backoff(f float64) Option {
	return func(o *Options) {
		o.backoffFactor = f
	}
}

// If is a functional option that sets the function to determine if an error
// should continue the retry.
func If(f func(error) bool) Option {
	return func(o *Options) {
		o.continueOnErr = f
	}
}

// Do runs the function until it returns nil or the context is done or canceled.
func Do(ctx context.Context, fn func() error, opts ...Option) error {
	return DoWithContext(ctx, func(context.Context) error { return fn() }, opts...)
}

// DoWithContext runs the function and passes the context to it until it
// returns nil or the context is done or canceled.
func DoWithContext(ctx context.Context, fn func(context.Context) error, opts ...Option) error {
	if ctx.Err() != nil {
		return fmt.Errorf("retry: context done or canceled before first attempt: %w", ctx.Err())
	}
	options := NewOptions(opts...)
	sleep := options.delay
	attempt := 0
	for {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if !options.continueOnErr(err) {
			return fmt.Errorf("retry: abort condition reached after %d attempts: %w", attempt, err)
		}

		if options.maxRetries > 0 && attempt >= options.maxRetries {
			return fmt.Errorf("retry: max retries reached: %w", err)
		}

		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return fmt.Errorf("retry: context done after %d attempts: %w: %w", attempt, ctx.Err(), err)
		}
		sleep = time.Duration(float64(sleep) * options.backoffFactor)
	}
}

// Get is a generic alternative of Do that returns the result of a function
// that returns a value and an error.
func Get[T any](ctx context.Context, fn func() (T, error), opts ...Option) (T, error) {
	var result T
	err := Do(ctx, func() error {
		var err error
		result, err = fn()
		return err
	}, opts...)
	return result, err
}
