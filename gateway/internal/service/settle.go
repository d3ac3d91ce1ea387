package service

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// AllSettled runs fns concurrently and reports each one's error by position.
// A failing fn does not cancel the others.
func AllSettled(ctx context.Context, fns ...func(ctx context.Context) error) []error {
	results := make([]error, len(fns))
	var gg errgroup.Group
	for i, fn := range fns {
		i, fn := i, fn
		gg.Go(func() error {
			results[i] = fn(ctx)
			return nil
		})
	}
	_ = gg.Wait() //nolint:errcheck
	return results
}

// Partial turns settled results into display warnings. It fails with the
// first error only when every call failed.
func Partial(results []error) ([]string, error) {
	var (
		warnings []string
		first    error
	)
	for _, err := range results {
		if err == nil {
			continue
		}
		if first == nil {
			first = err
		}
		warnings = append(warnings, err.Error())
	}
	if len(results) > 0 && len(warnings) == len(results) {
		return nil, first
	}
	return warnings, nil
}
