package accuracy

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Aggregate folds items into a report grouped by the profile's dimensions.
// The first item missing a required field aborts the fold.
func Aggregate(items []ScoredItem, profile Profile) (Report, error) {
	return aggregateFrom(items, 0, profile)
}

func aggregateFrom(items []ScoredItem, offset int, profile Profile) (Report, error) {
	report := newReport(profile.Dimensions)
	for i, item := range items {
		if err := Validate(item, offset+i, profile); err != nil {
			return Report{}, err
		}
		report.add(OverallKey, item.IsCorrect)
		for _, dim := range profile.Dimensions {
			value, ok := valueOf(item, dim)
			if !ok {
				continue
			}
			report.add(GroupKey{Dimension: dim, Value: value}, item.IsCorrect)
		}
	}
	return report, nil
}

// AggregateSharded splits items into contiguous shards, aggregates them
// concurrently, and merges the partial reports.
func AggregateSharded(ctx context.Context, items []ScoredItem, profile Profile, shards int) (Report, error) {
	if ctx == nil {
		return Report{}, errors.New("accuracy: context is nil")
	}
	if shards <= 1 || len(items) < 2 {
		return Aggregate(items, profile)
	}
	if shards > len(items) {
		shards = len(items)
	}
	size := (len(items) + shards - 1) / shards
	partials := make([]Report, shards)
	failures := make([]error, shards)
	// Shards run to completion; the lowest-position failure wins.
	var group errgroup.Group
	for shard := 0; shard < shards; shard++ {
		start := shard * size
		if start >= len(items) {
			partials[shard] = newReport(profile.Dimensions)
			continue
		}
		end := min(start+size, len(items))
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				failures[shard] = err
				return err
			}
			partial, err := aggregateFrom(items[start:end], start, profile)
			if err != nil {
				failures[shard] = err
				return err
			}
			partials[shard] = partial
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		for _, failure := range failures {
			var validationErr *ValidationError
			if errors.As(failure, &validationErr) {
				return Report{}, failure
			}
		}
		return Report{}, err
	}
	merged := newReport(profile.Dimensions)
	for _, partial := range partials {
		merged = merged.Merge(partial)
	}
	return merged, nil
}
