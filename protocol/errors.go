package protocol

import "errors"

// Decode errors are terminal: no partial Config or ButtonMapping is ever
// returned, and callers must treat the device state as untrustworthy rather
// than proceed with half a model. Encode fails only on oversized color
// lists, checked before anything is written.
var (
	// ErrTruncated reports an input shorter than the decode path needs.
	ErrTruncated = errors.New("truncated report")

	// ErrUnknownPollingRate reports a polling-rate code outside 1..4.
	ErrUnknownPollingRate = errors.New("unknown polling rate code")

	// ErrUnknownEffect reports an effect selector outside 0..10.
	ErrUnknownEffect = errors.New("unknown lighting effect")

	// ErrUnknownActionTag reports an unrecognized button-action or
	// macro-event discriminant.
	ErrUnknownActionTag = errors.New("unknown action tag")

	// ErrUnknownMediaBitmask reports media-button bits with no defined
	// meaning.
	ErrUnknownMediaBitmask = errors.New("unknown media button bitmask")

	// ErrCapacityExceeded reports a caller-supplied collection larger than
	// its fixed wire slot.
	ErrCapacityExceeded = errors.New("capacity exceeded")
)
