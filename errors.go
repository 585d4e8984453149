package bitgrain

import "errors"

// Sentinel errors returned at the Encode*/Decode boundary. Lower layers
// wrap these with fmt.Errorf("...: %w", ...) for context; callers should
// compare with errors.Is, not direct equality.
var (
	// ErrBadMagic is returned when the first two bytes of a stream are not 'B','G'.
	ErrBadMagic = errors.New("bitgrain: bad magic")

	// ErrBadVersion is returned when the header version byte is not a supported value.
	ErrBadVersion = errors.New("bitgrain: unsupported version")

	// ErrInvalidDimensions is returned when width or height is zero or exceeds MaxDimension.
	ErrInvalidDimensions = errors.New("bitgrain: invalid dimensions")

	// ErrCapacityExceeded is returned when an output buffer is smaller than required.
	ErrCapacityExceeded = errors.New("bitgrain: output capacity exceeded")

	// ErrMalformed is returned for truncated input, header corruption, or
	// any per-block structural violation encountered while parsing.
	ErrMalformed = errors.New("bitgrain: malformed stream")
)
