// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"math"
)

// BinStrategy identifies how values were bucketed.
type BinStrategy string

const (
	StrategyEqualWidth BinStrategy = "equal_width"
	StrategyQuartile   BinStrategy = "quartile"
)

// quartileThreshold is the value count above which quartile buckets replace
// equal-width bins.
const quartileThreshold = 100

// Bin is one labeled bucket.
type Bin struct {
	Label string
	Count int
	Lower float64
	Upper float64
}

// BinValues buckets values, choosing equal-width bins for up to 100 values
// and quartile buckets above that. Counts always sum to len(values).
func BinValues(values []float64, maxBins int) ([]Bin, BinStrategy) {
	if len(values) > quartileThreshold {
		return QuartileBins(values), StrategyQuartile
	}
	if maxBins <= 0 {
		maxBins = DefaultMaxBins
	}
	count := len(values) / 5
	if count > maxBins {
		count = maxBins
	}
	if count < 1 {
		count = 1
	}
	return EqualWidthBins(values, count), StrategyEqualWidth
}

// EqualWidthBins splits [min, max] into count intervals. Every interval is
// closed on the left and open on the right except the last, which is
// closed. A zero-width range is widened by 0.5 on each side.
func EqualWidthBins(values []float64, count int) []Bin {
	if len(values) == 0 {
		return []Bin{}
	}
	if count < 1 {
		count = 1
	}
	lo, hi := minMax(values)
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	width := (hi - lo) / float64(count)
	edges := make([]float64, count+1)
	for i := range edges {
		edges[i] = lo + width*float64(i)
	}
	edges[count] = hi

	bins := make([]Bin, count)
	for i := range bins {
		bins[i] = Bin{
			Label: fmt.Sprintf("%.0f-%.0f", edges[i], edges[i+1]),
			Lower: edges[i],
			Upper: edges[i+1],
		}
	}

	for _, v := range values {
		idx := int(math.Floor((v - lo) / width))
		if idx >= count {
			idx = count - 1
		}
		if idx < 0 {
			idx = 0
		}
		// Correct for floating point drift at the edges.
		for idx > 0 && v < edges[idx] {
			idx--
		}
		for idx < count-1 && v >= edges[idx+1] {
			idx++
		}
		bins[idx].Count++
	}
	return bins
}

// QuartileBins emits four buckets around Q1, Q2 and Q3: below Q1, [Q1, Q2),
// [Q2, Q3] and above Q3. A value equal to Q3 lands in the third bucket.
func QuartileBins(values []float64) []Bin {
	if len(values) == 0 {
		return []Bin{}
	}
	sorted := sortedCopy(values)
	q1 := percentile(sorted, 25)
	q2 := percentile(sorted, 50)
	q3 := percentile(sorted, 75)
	lo, hi := sorted[0], sorted[len(sorted)-1]

	bins := []Bin{
		{Label: fmt.Sprintf("< %.0f", q1), Lower: lo, Upper: q1},
		{Label: fmt.Sprintf("%.0f - %.0f", q1, q2), Lower: q1, Upper: q2},
		{Label: fmt.Sprintf("%.0f - %.0f", q2, q3), Lower: q2, Upper: q3},
		{Label: fmt.Sprintf("> %.0f", q3), Lower: q3, Upper: hi},
	}
	for _, v := range values {
		switch {
		case v < q1:
			bins[0].Count++
		case v < q2:
			bins[1].Count++
		case v <= q3:
			bins[2].Count++
		default:
			bins[3].Count++
		}
	}
	return bins
}
