// Package apperr defines sentinel errors shared across layers.
package apperr

import "errors"

var (
	// ErrNoData means the trip artifact has not been generated yet.
	ErrNoData = errors.New("no trip data")
)
