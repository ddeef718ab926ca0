package vision

import (
	"image"

	geo "github.com/kellydunn/golang-geo"
	"github.com/stewardhq/steward/src/models"
)

// PolygonMask rasterises the configured region polygons into a boolean
// mask with one entry per pixel. A pixel is true when it falls inside at
// least one polygon and should take part in motion detection.
func PolygonMask(bounds image.Rectangle, polygons []models.Polygon) []bool {
	var polyObjects []*geo.Polygon
	for _, polygon := range polygons {
		poly := &geo.Polygon{}
		for _, c := range polygon.Coordinates {
			p := geo.NewPoint(c.X, c.Y)
			if !poly.Contains(p) {
				poly.Add(p)
			}
		}
		polyObjects = append(polyObjects, poly)
	}

	w := bounds.Dx()
	h := bounds.Dy()
	mask := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			point := geo.NewPoint(float64(x), float64(y))
			for _, poly := range polyObjects {
				if poly.Contains(point) {
					mask[y*w+x] = true
					break
				}
			}
		}
	}
	return mask
}
