// Package rect generates vertices of axis aligned rectangles.
package rect

import (
	"github.com/seqsense/pcgol/mat"
)

// Vertices returns the corners of the rectangle as x, y pairs in the order
// top-left, top-right, bottom-left, bottom-right.
// The order draws the rectangle as a TRIANGLE_STRIP.
// Negative sizes are not rejected and give a flipped rectangle.
func Vertices(topLeft [2]float32, width, height float32) []float32 {
	x, y := topLeft[0], topLeft[1]
	return []float32{
		x, y,
		x + width, y,
		x, y + height,
		x + width, y + height,
	}
}

// Corners returns the corners in the same order as Vertices on the plane z.
func Corners(topLeft [2]float32, width, height, z float32) []mat.Vec3 {
	v := Vertices(topLeft, width, height)
	ret := make([]mat.Vec3, 0, len(v)/2)
	for i := 0; i < len(v); i += 2 {
		ret = append(ret, mat.Vec3{v[i], v[i+1], z})
	}
	return ret
}
