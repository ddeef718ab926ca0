// Connecting to different frame sources for the security monitor.
package capture

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
	"time"

	"github.com/stewardhq/steward/src/monitor"
)

// ForDevice picks a frame source implementation based on the device
// identifier: http(s) URLs are treated as MJPEG streams, anything else
// as a directory of image files to replay.
func ForDevice(device string, fps int) monitor.FrameSource {
	if strings.HasPrefix(device, "http://") || strings.HasPrefix(device, "https://") {
		return NewMJPEGSource()
	}
	return NewFolderSource(fps)
}

// toFrame converts a decoded image into a monitor.Frame, with both the
// grayscale plane for detection and the colour plane for persistence.
func toFrame(img image.Image, timestamp time.Time) monitor.Frame {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return monitor.Frame{
		Gray:      gray,
		RGBA:      rgba,
		Timestamp: timestamp,
	}
}

func deviceUnavailable(device string, err error) error {
	return fmt.Errorf("%w: %s: %s", monitor.ErrDeviceUnavailable, device, err.Error())
}

func readFailed(err error) error {
	return fmt.Errorf("%w: %s", monitor.ErrRead, err.Error())
}
