// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrCorrupt indicates that a file does not hold a valid matrix image.
	ErrCorrupt = errors.New("store: corrupt matrix file")

	// ErrReadOnly is returned by Set on a file mapped read-only.
	ErrReadOnly = errors.New("store: file is read-only")

	// ErrClosed is returned by every accessor after Close.
	ErrClosed = errors.New("store: file is closed")
)

// storeErrorf wraps err with an operation tag, keeping errors.Is semantics.
func storeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
