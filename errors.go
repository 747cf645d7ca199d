package bitvec

import "errors"

var (
	// ErrTooManyBits is returned when bit indices do not fit the
	// index space of an interop target, or an interop source holds
	// more bits than the platform int can address.
	ErrTooManyBits = errors.New("bit count exceeds target index space")
)
