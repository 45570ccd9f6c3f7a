// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"fmt"
	"strings"
)

// FenceLabel marks the code block the frontend scans for chart data.
const FenceLabel = "recharts"

// Fence wraps an encoded payload in a recharts code block.
func Fence(payload []byte) string {
	var b strings.Builder
	b.Grow(len(payload) + 20)
	b.WriteString("```")
	b.WriteString(FenceLabel)
	b.WriteByte('\n')
	b.Write(payload)
	b.WriteString("\n```")
	return b.String()
}

// ChartText renders the success message for a single chart.
func ChartText(rec *ChartRecord) (string, error) {
	payload, err := MarshalRecord(rec)
	if err != nil {
		return "", err
	}
	return "Chart created successfully!\n\n" + Fence(payload), nil
}

// DashboardText renders the success message for a dashboard.
func DashboardText(board *Dashboard) (string, error) {
	payload, err := MarshalRecord(board)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Dashboard created for %d key columns!\n\n%s", len(board.Plots), Fence(payload)), nil
}

// UsageText lists the chart kinds and the columns each one reads.
const UsageText = `Supported chart types:
- histogram: column (required, numeric)
- line: column (required); a second numeric column is summed per month for dates
- bar: column (required), group_by (optional)
- pie: column (required), group_by (optional)
- scatter: two numeric columns (column and group_by, or columns)
- area: datetime column (required); a second numeric column is accumulated
- smart_dashboard: column (required); charted with the next three columns

Examples:
- create_enhanced_chart(dataset="sales", chart_type="histogram", column="SALES")
- create_enhanced_chart(dataset="sales", chart_type="bar", column="SALES", group_by="COUNTRY")
- create_enhanced_chart(dataset="sales", chart_type="pie", column="QUANTITYORDERED", group_by="PRODUCTLINE")
- create_enhanced_chart(dataset="sales", chart_type="scatter", column="SALES", group_by="QUANTITYORDERED")`
