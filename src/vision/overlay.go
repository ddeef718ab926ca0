package vision

import (
	"image"
	"image/color"
	"time"

	"github.com/dromara/carbon/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawTimestamp overlays a human-readable timestamp in the bottom-left
// corner of the frame, before it is written to a recording or screenshot.
// Cosmetic only, the detection pipeline never looks at the overlay.
func DrawTimestamp(img *image.RGBA, timestamp time.Time) {
	label := carbon.CreateFromStdTime(timestamp).Layout("Monday 02 January 2006 03:04:05PM")
	bounds := img.Bounds()
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.I(bounds.Min.X + 10),
			Y: fixed.I(bounds.Max.Y - 10),
		},
	}
	drawer.DrawString(label)
}

// DrawRectangle draws the outline of a motion region onto the frame,
// mirroring the green bounding boxes a viewer expects on a security feed.
func DrawRectangle(img *image.RGBA, x int, y int, width int, height int) {
	green := color.RGBA{G: 255, A: 255}
	for i := x; i < x+width; i++ {
		img.SetRGBA(i, y, green)
		img.SetRGBA(i, y+height-1, green)
	}
	for j := y; j < y+height; j++ {
		img.SetRGBA(x, j, green)
		img.SetRGBA(x+width-1, j, green)
	}
}
