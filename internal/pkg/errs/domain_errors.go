package errs

import "errors"

// Cross-layer sentinel errors; handlers only need errors.Is against these
var (
	// Input errors
	ErrInvalidInput = errors.New("invalid input")

	// Booking errors
	ErrNotBookable = errors.New("not bookable")
)
