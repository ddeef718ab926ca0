package monitor

import "errors"

// Error taxonomy of the security monitor. The first two are fatal for a
// monitoring session, the last two are recoverable: they are logged and
// monitoring continues, no retries anywhere.
var (
	ErrDeviceUnavailable = errors.New("capture device unavailable")
	ErrRead              = errors.New("frame read failed")
	ErrPersistence       = errors.New("persistence failed")
	ErrNotification      = errors.New("notification failed")
)
