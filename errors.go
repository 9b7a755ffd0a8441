package maskedit

import "errors"

var (
	// ErrInvalidGesture is reported for gestures with fewer than two
	// points. Such gestures are dropped without changing the mask.
	ErrInvalidGesture = errors.New("maskedit: degenerate gesture")

	// ErrMissingDimensions is reported when a gesture starts before the
	// image dimensions are known.
	ErrMissingDimensions = errors.New("maskedit: image dimensions not known")

	// ErrNoImage is reported when a gesture starts while no base image is
	// assigned, or after the base image failed to decode.
	ErrNoImage = errors.New("maskedit: no image loaded")

	// ErrDecodeFailure is reported when the base image cannot be decoded.
	ErrDecodeFailure = errors.New("maskedit: cannot decode image")

	// ErrStaleLoad is reported by a load which was superseded by a newer
	// call to LoadImage before its decoding finished.
	ErrStaleLoad = errors.New("maskedit: image load superseded")

	// ErrInvalidConfig is reported for unusable editor settings.
	ErrInvalidConfig = errors.New("maskedit: invalid configuration")
)
