// Copyright ©2026 The hexbin-generator Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hexbin

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by statistics functions given no values.
	ErrEmptyInput = errors.New("hexbin: empty input")

	// ErrInsufficientData is returned when quartiles are requested
	// for fewer than four values.
	ErrInsufficientData = errors.New("hexbin: at least 4 values are required for quartile estimation")

	// ErrInvalidDimension is returned for a non-positive hexagon dimension.
	ErrInvalidDimension = errors.New("hexbin: hexagon dimension must be positive")

	// ErrUnsupportedShape is returned when a tessellation of a shape
	// other than Hexagon is requested.
	ErrUnsupportedShape = errors.New("hexbin: unsupported tessellation shape")

	// ErrUnsupportedFormat is returned by Dispatch for paths it has no
	// Store for.
	ErrUnsupportedFormat = errors.New("hexbin: unsupported feature format")

	// ErrNotFound is returned by MemoryStore for paths it holds no layer for.
	ErrNotFound = errors.New("hexbin: layer not found")
)

// ExternalOperationError reports a failure in a geometry source or
// tessellation engine call.
type ExternalOperationError struct {
	// Op is the name of the operation that failed, such as
	// "read" or "generate tessellation".
	Op string
	// Path is the feature collection involved, if any.
	Path string
	Err  error
}

func (e *ExternalOperationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("hexbin: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("hexbin: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExternalOperationError) Unwrap() error { return e.Err }

// external wraps err as an *ExternalOperationError unless it already is one.
func external(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ee *ExternalOperationError
	if errors.As(err, &ee) {
		return err
	}
	return &ExternalOperationError{Op: op, Path: path, Err: err}
}
