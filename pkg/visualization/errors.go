// Copyright © 2026 Teradata Corporation - All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.

package visualization

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound reports a referenced column absent from the dataset.
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnsupportedOperation reports a chart kind that cannot be built from
	// the supplied columns.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

func columnNotFound(dataset, column string) error {
	return fmt.Errorf("%w: %q in dataset %q", ErrColumnNotFound, column, dataset)
}

func unsupported(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedOperation, fmt.Sprintf(format, args...))
}
