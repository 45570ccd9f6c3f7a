// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"math/rand/v2"
	"time"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

// minSamplePoints is the smallest sample that can hold both extremes.
const minSamplePoints = 2

// Sampling methods reported in chart metadata.
const (
	SamplePassthrough = "passthrough"
	SamplePercentile  = "percentile"
	SampleFrequency   = "frequency"
	SampleTimeSpaced  = "time_spaced"
	SampleRandom      = "random"
)

// Sample reduces col to at most maxPoints representative values. Columns
// with no more than maxPoints present values come back unchanged and in
// order. Larger columns are reduced by class:
//
//   - numeric: maxPoints-4 evenly spaced percentiles, first and last pinned
//     to the exact minimum and maximum
//   - categorical: the maxPoints most frequent values, ties in first-seen order
//   - datetime: maxPoints evenly spaced dates formatted YYYY-MM-DD
//   - unknown: a uniform sample without replacement drawn from rng
//
// maxPoints below 2 is treated as 2.
func Sample(col *dataset.Column, maxPoints int, rng *rand.Rand) []any {
	values, _ := sample(col, maxPoints, rng)
	return values
}

func sample(col *dataset.Column, maxPoints int, rng *rand.Rand) ([]any, string) {
	if maxPoints < minSamplePoints {
		maxPoints = minSamplePoints
	}
	present := col.Present()
	values := make([]any, len(present))
	for i, idx := range present {
		values[i] = col.Values[idx]
	}
	if len(values) <= maxPoints {
		return values, SamplePassthrough
	}

	switch dataset.Classify(col) {
	case dataset.ClassNumeric:
		return sampleNumeric(col.Floats(), maxPoints), SamplePercentile
	case dataset.ClassCategorical:
		return sampleCategorical(values, maxPoints), SampleFrequency
	case dataset.ClassDatetime:
		return sampleDatetime(col.Times(), maxPoints), SampleTimeSpaced
	default:
		if rng == nil {
			rng = newRand(nil)
		}
		out := make([]any, 0, maxPoints)
		for _, i := range pickIndexes(len(values), maxPoints, rng) {
			out = append(out, values[i])
		}
		return out, SampleRandom
	}
}

func sampleNumeric(values []float64, maxPoints int) []any {
	if len(values) == 0 {
		return []any{}
	}
	n := maxPoints - 4
	if n < minSamplePoints {
		n = minSamplePoints
	}
	sorted := sortedCopy(values)
	out := make([]any, n)
	for i := 0; i < n; i++ {
		p := 100 * float64(i) / float64(n-1)
		out[i] = percentile(sorted, p)
	}
	out[0] = sorted[0]
	out[n-1] = sorted[len(sorted)-1]
	return out
}

func sampleCategorical(values []any, maxPoints int) []any {
	counts := make(map[any]int)
	order := make([]any, 0)
	for _, v := range values {
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	ranked := rankByCount(order, counts)
	if len(ranked) > maxPoints {
		ranked = ranked[:maxPoints]
	}
	return ranked
}

func sampleDatetime(times []time.Time, maxPoints int) []any {
	if len(times) == 0 {
		return []any{}
	}
	lo, hi := times[0], times[0]
	for _, t := range times[1:] {
		if t.Before(lo) {
			lo = t
		}
		if t.After(hi) {
			hi = t
		}
	}
	span := hi.Sub(lo)
	out := make([]any, maxPoints)
	for i := 0; i < maxPoints; i++ {
		offset := time.Duration(float64(span) * float64(i) / float64(maxPoints-1))
		out[i] = lo.Add(offset).Format(time.DateOnly)
	}
	return out
}
