// Frame differencing primitives for the security monitor.
package vision

import (
	"image"

	"github.com/stewardhq/steward/src/models"
)

// The smoothing kernel is fixed, the same filter has to be applied to the
// reference frame and the incoming frame so both are comparable.
const smoothRadius = 2

// Detector runs the motion detection pipeline on grayscale frames.
// Sensitivity is the binary threshold on the frame delta, so a higher
// value makes the detector less sensitive. MinArea is the minimum number
// of pixels a connected region needs before it counts as motion.
type Detector struct {
	Sensitivity int
	MinArea     int
	mask        []bool
}

func NewDetector(sensitivity int, minArea int) *Detector {
	return &Detector{
		Sensitivity: sensitivity,
		MinArea:     minArea,
	}
}

// SetRegion restricts detection to the given polygons. Pixels outside
// every polygon are ignored, the same way a region of interest mask works.
func (d *Detector) SetRegion(bounds image.Rectangle, region *models.Region) {
	if region == nil || len(region.Polygon) == 0 {
		d.mask = nil
		return
	}
	d.mask = PolygonMask(bounds, region.Polygon)
}

// Detect compares an incoming smoothed frame against the reference frame
// and returns the bounding regions of connected changed areas. Both inputs
// must have gone through Smooth with the same kernel. Frames whose
// dimensions differ from the reference are not comparable and yield no
// regions, the caller re-baselines on a resolution change.
func (d *Detector) Detect(reference *image.Gray, frame *image.Gray) []models.MotionRegion {
	if reference.Bounds() != frame.Bounds() {
		return nil
	}
	delta := AbsDiff(reference, frame)
	if d.mask != nil {
		applyMask(delta, d.mask)
	}
	thresh := Threshold(delta, uint8(d.Sensitivity))
	Dilate(thresh, 2)
	return FindRegions(thresh, d.MinArea)
}

// Smooth applies a fixed-kernel box blur to suppress sensor noise.
// The input is not modified.
func Smooth(src *image.Gray) *image.Gray {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	dst := image.NewGray(bounds)

	// Horizontal pass into a scratch buffer, vertical pass into dst.
	scratch := make([]uint8, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, count := 0, 0
			for k := -smoothRadius; k <= smoothRadius; k++ {
				xx := x + k
				if xx < 0 || xx >= w {
					continue
				}
				sum += int(src.Pix[y*src.Stride+xx])
				count++
			}
			scratch[y*w+x] = uint8(sum / count)
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum, count := 0, 0
			for k := -smoothRadius; k <= smoothRadius; k++ {
				yy := y + k
				if yy < 0 || yy >= h {
					continue
				}
				sum += int(scratch[yy*w+x])
				count++
			}
			dst.Pix[y*dst.Stride+x] = uint8(sum / count)
		}
	}
	return dst
}

// AbsDiff computes the absolute per-pixel difference of two frames of
// identical dimensions.
func AbsDiff(a *image.Gray, b *image.Gray) *image.Gray {
	bounds := a.Bounds()
	dst := image.NewGray(bounds)
	for i := 0; i < len(dst.Pix); i++ {
		diff := int(a.Pix[i]) - int(b.Pix[i])
		if diff < 0 {
			diff = -diff
		}
		dst.Pix[i] = uint8(diff)
	}
	return dst
}

// Threshold produces a binary mask: pixels strictly above level become
// 255, everything else 0.
func Threshold(src *image.Gray, level uint8) *image.Gray {
	dst := image.NewGray(src.Bounds())
	for i, p := range src.Pix {
		if p > level {
			dst.Pix[i] = 255
		}
	}
	return dst
}

// Dilate grows the binary mask in place with a 3x3 structuring element,
// merging nearby fragments and closing small holes.
func Dilate(mask *image.Gray, iterations int) {
	bounds := mask.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	for it := 0; it < iterations; it++ {
		src := make([]uint8, len(mask.Pix))
		copy(src, mask.Pix)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if src[y*mask.Stride+x] == 255 {
					continue
				}
				on := false
				for dy := -1; dy <= 1 && !on; dy++ {
					for dx := -1; dx <= 1; dx++ {
						xx, yy := x+dx, y+dy
						if xx < 0 || xx >= w || yy < 0 || yy >= h {
							continue
						}
						if src[yy*mask.Stride+xx] == 255 {
							on = true
							break
						}
					}
				}
				if on {
					mask.Pix[y*mask.Stride+x] = 255
				}
			}
		}
	}
}

// FindRegions extracts the external connected regions of a binary mask
// and returns the bounding rectangle of every region whose pixel area is
// at least minArea.
func FindRegions(mask *image.Gray, minArea int) []models.MotionRegion {
	bounds := mask.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	visited := make([]bool, w*h)
	var regions []models.MotionRegion

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || mask.Pix[y*mask.Stride+x] != 255 {
				continue
			}

			// Flood fill the component, tracking area and bounding box.
			minX, minY, maxX, maxY := x, y, x, y
			area := 0
			stack := []int{idx}
			visited[idx] = true
			for len(stack) > 0 {
				p := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				px, py := p%w, p/w
				area++
				if px < minX {
					minX = px
				}
				if px > maxX {
					maxX = px
				}
				if py < minY {
					minY = py
				}
				if py > maxY {
					maxY = py
				}
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						nx, ny := px+dx, py+dy
						if nx < 0 || nx >= w || ny < 0 || ny >= h {
							continue
						}
						nidx := ny*w + nx
						if !visited[nidx] && mask.Pix[ny*mask.Stride+nx] == 255 {
							visited[nidx] = true
							stack = append(stack, nidx)
						}
					}
				}
			}

			if area < minArea {
				continue
			}
			regions = append(regions, models.MotionRegion{
				X:      minX,
				Y:      minY,
				Width:  maxX - minX + 1,
				Height: maxY - minY + 1,
			})
		}
	}
	return regions
}

func applyMask(img *image.Gray, mask []bool) {
	for i := range img.Pix {
		if !mask[i] {
			img.Pix[i] = 0
		}
	}
}
