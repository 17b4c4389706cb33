// Package canvas keeps a canvas backing store sized to its displayed area.
package canvas

import "math"

// Surface is a drawable element with a backing pixel buffer.
type Surface interface {
	Width() int
	Height() int
	SetWidth(width int)
	SetHeight(height int)
	ClientWidth() int
	ClientHeight() int
	// BoundingClientRect returns the displayed size in CSS pixels.
	BoundingClientRect() (width, height float64)
}

type Viewporter interface {
	Viewport(x, y, width, height int)
}

// Resize sets the backing size of s and reports whether it changed.
// All other sizing functions go through Resize.
func Resize(s Surface, width, height int) bool {
	if s.Width() == width && s.Height() == height {
		return false
	}
	s.SetHeight(height)
	s.SetWidth(width)
	return true
}

// ResizeToClientSize matches the backing size to the client size in CSS pixels.
func ResizeToClientSize(s Surface) bool {
	return Resize(s, s.ClientWidth(), s.ClientHeight())
}

// ResizeConsideringDevicePixelRatio matches the backing size to the
// displayed size in device pixels.
func ResizeConsideringDevicePixelRatio(s Surface, dpr float64) bool {
	w, h := s.BoundingClientRect()
	return Resize(s, devicePixels(w, dpr), devicePixels(h, dpr))
}

// SyncViewport resizes s and, if the size changed, resets the viewport
// to cover the whole backing buffer.
func SyncViewport(v Viewporter, s Surface, dpr float64) bool {
	if !ResizeConsideringDevicePixelRatio(s, dpr) {
		return false
	}
	v.Viewport(0, 0, s.Width(), s.Height())
	return true
}

func devicePixels(css, dpr float64) int {
	return int(math.Round(css * dpr))
}
