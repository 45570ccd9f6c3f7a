// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const truncationNote = "Data truncated for context efficiency (showing top %d of %d records)"

// truncationPrefix identifies a note written by EnforceBudget.
var truncationPrefix = truncationNote[:strings.Index(truncationNote, "(")]

// MarshalRecord encodes a chart or dashboard the way it is handed to the
// frontend: two-space indent, no HTML escaping, no trailing newline.
func MarshalRecord(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// EnforceBudget returns rec unchanged when its encoding fits in maxBytes.
// Otherwise it returns a copy whose data is cut to the first 10 points with
// a truncation note naming the original record count. rec is never
// modified, and a record that was already truncated is returned as is.
func EnforceBudget(rec *ChartRecord, maxBytes int) (*ChartRecord, error) {
	if rec == nil {
		return nil, fmt.Errorf("chart record is nil")
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if strings.HasPrefix(rec.Note, truncationPrefix) && len(rec.Data) <= TruncatedPoints {
		return rec, nil
	}

	encoded, err := MarshalRecord(rec)
	if err != nil {
		return nil, err
	}
	if len(encoded) <= maxBytes {
		return rec, nil
	}

	original := len(rec.Data)
	if rec.Metadata != nil {
		original = rec.Metadata.OriginalSize
	}

	out := *rec
	keep := min(len(rec.Data), TruncatedPoints)
	out.Data = make([]DataPoint, keep)
	copy(out.Data, rec.Data[:keep])
	out.Note = fmt.Sprintf(truncationNote, TruncatedPoints, original)
	return &out, nil
}
