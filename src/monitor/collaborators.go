package monitor

import (
	"image"
	"time"
)

// Frame is a single captured video frame. Gray carries the pixel samples
// used by the detection pipeline, RGBA the full-colour variant written to
// recordings and screenshots. A frame is immutable once produced by the
// frame source, except for the cosmetic overlays drawn right before a
// persistence write.
type Frame struct {
	Gray      *image.Gray
	RGBA      *image.RGBA
	Timestamp time.Time
}

// FrameSource abstracts the capture device. Open reports
// ErrDeviceUnavailable when the device cannot be acquired, Read blocks
// until the next frame is available or fails with a read error which
// terminates the monitoring loop.
type FrameSource interface {
	Open(device string) error
	Read() (Frame, error)
	Close() error
}

// Recording is an in-progress recording output created by a RecordingSink.
type Recording interface {
	Write(frame Frame) error
	Close() error
}

// RecordingSink creates recording outputs. The destination is a
// timestamp-derived identifier unique per session; two sessions started
// within the same second collide, which is an accepted limitation.
type RecordingSink interface {
	Create(destination string, width int, height int, fps int) (Recording, error)
}

// ScreenshotStore persists a single representative frame and returns the
// location it was written to.
type ScreenshotStore interface {
	Save(frame Frame, timestamp time.Time) (string, error)
}

// NotificationChannel alerts an operator with a screenshot location and a
// caption. Implementations exist for email and a chatbot API, failures
// are logged only, never retried.
type NotificationChannel interface {
	Send(imageLocation string, captionText string) error
}

// RecordingSession represents an in-progress capture triggered by motion.
// At most one session is active at a time; a new motion event during an
// active session neither starts a second session nor extends the current
// one.
type RecordingSession struct {
	ID          string
	Start       time.Time
	Destination string
	Frames      int
}
