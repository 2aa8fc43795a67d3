package gles

import "errors"

// Common frontend-usage errors.
var (
	// ErrInvalidOperation means the frontend's declared usage is
	// self-contradictory for the current draw (for example a uniform
	// block whose binding point has no buffer bound). The draw fails;
	// renderer state stays consistent.
	ErrInvalidOperation = errors.New("gles: invalid operation")
)
