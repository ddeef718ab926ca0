// Disk-backed persistence for recordings and screenshots, with optional
// offloading to an S3 compatible object store.
package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/stewardhq/steward/src/monitor"
)

const jpegQuality = 75

// EncodeJPEG encodes the colour plane of a frame (or the grayscale plane
// when no colour is available) into JPEG bytes.
func EncodeJPEG(frame monitor.Frame) ([]byte, error) {
	var img image.Image
	if frame.RGBA != nil {
		img = frame.RGBA
	} else if frame.Gray != nil {
		img = frame.Gray
	} else {
		return nil, fmt.Errorf("%w: frame has no pixel data", monitor.ErrPersistence)
	}

	buffer := new(bytes.Buffer)
	if err := jpeg.Encode(buffer, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("%w: %s", monitor.ErrPersistence, err.Error())
	}
	return buffer.Bytes(), nil
}
