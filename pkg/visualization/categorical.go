// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/teradata-labs/chartkit/pkg/dataset"
)

// otherLabel names the pie slice that folds the categories past the limit.
const otherLabel = "Other"

// category is one aggregated label.
type category struct {
	label string
	total float64
}

// aggregation is the result of grouping a column.
type aggregation struct {
	categories []category // descending by total, ties in first-seen order
	used       int        // rows that contributed
	valueLabel string     // "Count" or "Total <column>"
	method     string     // value_counts or group_sum
}

// rankByCount orders values by descending count, keeping first-seen order
// between equal counts.
func rankByCount(order []any, counts map[any]int) []any {
	ranked := make([]any, len(order))
	copy(ranked, order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}

// aggregate groups a target column. Without a grouping column it counts the
// target's values; with one it sums the numeric target per group label.
// Rows missing any referenced cell are skipped.
func aggregate(ds *dataset.Dataset, spec ColumnSpec, kind ChartKind) (*dataset.Column, *aggregation, error) {
	col, err := requireColumn(ds, spec.Column(), kind)
	if err != nil {
		return nil, nil, err
	}

	index := make(map[string]int)
	agg := &aggregation{}
	add := func(label string, amount float64) {
		i, ok := index[label]
		if !ok {
			i = len(agg.categories)
			index[label] = i
			agg.categories = append(agg.categories, category{label: label})
		}
		agg.categories[i].total += amount
		agg.used++
	}

	if spec.GroupBy == "" {
		agg.valueLabel = "Count"
		agg.method = "value_counts"
		for _, i := range col.Present() {
			add(formatValue(col.Values[i]), 1)
		}
	} else {
		group, ok := ds.Column(spec.GroupBy)
		if !ok {
			return nil, nil, columnNotFound(ds.Name, spec.GroupBy)
		}
		if class := dataset.Classify(col); class != dataset.ClassNumeric {
			return nil, nil, unsupported("%s grouped by %q needs a numeric column, %q is %s", kind, group.Name, col.Name, class)
		}
		agg.valueLabel = "Total " + col.Name
		agg.method = "group_sum"
		for i := range col.Values {
			if group.IsMissing(i) {
				continue
			}
			v, ok := col.Float(i)
			if !ok {
				continue
			}
			add(formatValue(group.Values[i]), v)
		}
	}

	sort.SliceStable(agg.categories, func(i, j int) bool {
		return agg.categories[i].total > agg.categories[j].total
	})
	return col, agg, nil
}

// Bar charts the most frequent values of a column, or the largest per-group
// sums when spec.GroupBy is set.
func (e *Engine) Bar(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	col, agg, err := aggregate(ds, spec, KindBar)
	if err != nil {
		return nil, err
	}

	top := agg.categories
	if len(top) > opts.TopN {
		top = top[:opts.TopN]
	}
	data := make([]DataPoint, len(top))
	for i, c := range top {
		data[i] = LabeledValue{Label: c.label, Value: c.total}
	}

	title := fmt.Sprintf("%s Distribution", col.Name)
	xLabel := col.Name
	if spec.GroupBy != "" {
		title = fmt.Sprintf("%s by %s", col.Name, spec.GroupBy)
		xLabel = spec.GroupBy
	}

	return &ChartRecord{
		Type:   "bar",
		Title:  titleOr(opts.Title, "%s", title),
		XLabel: xLabel,
		YLabel: agg.valueLabel,
		Data:   data,
		Metadata: &Metadata{
			OriginalSize: ds.RowCount(),
			DroppedRows:  ds.RowCount() - agg.used,
			ChartType:    "bar",
			Optimization: agg.method,
		},
	}, nil
}

// Pie converts the same aggregation as Bar into percentage slices. The
// largest PieSlices categories get their own slice and any remainder is
// folded into a single "Other" slice, so the slices always cover the whole
// total. Only positive totals are charted.
func (e *Engine) Pie(ds *dataset.Dataset, spec ColumnSpec, opts Options) (*ChartRecord, error) {
	opts = e.options(opts)
	col, agg, err := aggregate(ds, spec, KindPie)
	if err != nil {
		return nil, err
	}

	positive := make([]category, 0, len(agg.categories))
	for _, c := range agg.categories {
		if c.total > 0 {
			positive = append(positive, c)
		}
	}

	slices := positive
	if len(positive) > opts.PieSlices {
		rest := category{label: otherLabel}
		for _, c := range positive[opts.PieSlices:] {
			rest.total += c.total
		}
		slices = append(append([]category{}, positive[:opts.PieSlices]...), rest)
	}

	shares := percentages(slices)
	data := make([]DataPoint, len(slices))
	for i, c := range slices {
		data[i] = LabeledValue{Label: c.label, Value: shares[i]}
	}

	title := fmt.Sprintf("%s Distribution", col.Name)
	if spec.GroupBy != "" {
		title = fmt.Sprintf("%s Distribution by %s", col.Name, spec.GroupBy)
	}

	return &ChartRecord{
		Type:  "pie",
		Title: titleOr(opts.Title, "%s", title),
		Data:  data,
		Metadata: &Metadata{
			OriginalSize: ds.RowCount(),
			DroppedRows:  ds.RowCount() - agg.used,
			ChartType:    "pie",
			Optimization: agg.method + "_percent",
		},
	}, nil
}

// percentages rounds each category's share of the total to one decimal
// using the largest remainder method, so the shares add up to exactly 100.0.
// A non-positive total yields no shares.
func percentages(cats []category) []float64 {
	out := make([]float64, len(cats))
	total := decimal.Zero
	for _, c := range cats {
		total = total.Add(decimal.NewFromFloat(c.total))
	}
	if !total.IsPositive() {
		return out
	}

	// Work in tenths of a percent.
	scale := decimal.NewFromInt(1000)
	floors := make([]decimal.Decimal, len(cats))
	remainders := make([]decimal.Decimal, len(cats))
	assigned := decimal.Zero
	for i, c := range cats {
		exact := decimal.NewFromFloat(c.total).Mul(scale).Div(total)
		floors[i] = exact.Floor()
		remainders[i] = exact.Sub(floors[i])
		assigned = assigned.Add(floors[i])
	}

	order := make([]int, len(cats))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})
	left := int(scale.Sub(assigned).IntPart())
	for k := 0; k < left && k < len(order); k++ {
		floors[order[k]] = floors[order[k]].Add(decimal.NewFromInt(1))
	}

	tenth := decimal.New(1, -1)
	for i := range floors {
		out[i] = floors[i].Mul(tenth).InexactFloat64()
	}
	return out
}
