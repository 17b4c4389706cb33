package canvas

import (
	"testing"
)

type fakeSurface struct {
	width, height             int
	clientWidth, clientHeight int
	rectWidth, rectHeight     float64
	sets                      int
}

func (s *fakeSurface) Width() int        { return s.width }
func (s *fakeSurface) Height() int       { return s.height }
func (s *fakeSurface) ClientWidth() int  { return s.clientWidth }
func (s *fakeSurface) ClientHeight() int { return s.clientHeight }

func (s *fakeSurface) SetWidth(width int) {
	s.width = width
	s.sets++
}

func (s *fakeSurface) SetHeight(height int) {
	s.height = height
	s.sets++
}

func (s *fakeSurface) BoundingClientRect() (float64, float64) {
	return s.rectWidth, s.rectHeight
}

type viewport struct {
	x, y, width, height int
	calls               int
}

func (v *viewport) Viewport(x, y, width, height int) {
	v.x, v.y, v.width, v.height = x, y, width, height
	v.calls++
}

func TestResize(t *testing.T) {
	s := &fakeSurface{width: 300, height: 150}

	if !Resize(s, 640, 480) {
		t.Error("First resize must report a change")
	}
	if s.width != 640 || s.height != 480 {
		t.Errorf("Expected 640x480, got %dx%d", s.width, s.height)
	}
	if Resize(s, 640, 480) {
		t.Error("Second resize to the same size must not report a change")
	}
	if s.sets != 2 {
		t.Errorf("Unchanged size must not be written, got %d writes", s.sets)
	}
	if !Resize(s, 640, 481) {
		t.Error("Height only change must be reported")
	}
}

func TestResizeToClientSize(t *testing.T) {
	s := &fakeSurface{clientWidth: 320, clientHeight: 200, rectWidth: 1, rectHeight: 1}
	if !ResizeToClientSize(s) {
		t.Fatal("Resize must report a change")
	}
	if s.width != 320 || s.height != 200 {
		t.Errorf("Expected 320x200, got %dx%d", s.width, s.height)
	}
}

func TestResizeConsideringDevicePixelRatio(t *testing.T) {
	testCases := map[string]struct {
		rectWidth, rectHeight float64
		dpr                   float64
		width, height         int
	}{
		"Ratio1":       {rectWidth: 300, rectHeight: 150, dpr: 1, width: 300, height: 150},
		"Ratio2":       {rectWidth: 300, rectHeight: 150, dpr: 2, width: 600, height: 300},
		"Fractional":   {rectWidth: 300.5, rectHeight: 150.2, dpr: 1.5, width: 451, height: 225},
		"Half":         {rectWidth: 101, rectHeight: 33, dpr: 1.5, width: 152, height: 50},
		"CSSFractions": {rectWidth: 99.7, rectHeight: 0.4, dpr: 1, width: 100, height: 0},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			s := &fakeSurface{rectWidth: tt.rectWidth, rectHeight: tt.rectHeight}
			ResizeConsideringDevicePixelRatio(s, tt.dpr)
			if s.width != tt.width || s.height != tt.height {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.height, s.width, s.height)
			}
		})
	}
}

func TestSyncViewport(t *testing.T) {
	s := &fakeSurface{width: 300, height: 150, rectWidth: 400, rectHeight: 200}
	v := &viewport{}

	if !SyncViewport(v, s, 2) {
		t.Fatal("SyncViewport must report a change")
	}
	if v.calls != 1 {
		t.Fatalf("Expected 1 viewport call, got %d", v.calls)
	}
	if v.x != 0 || v.y != 0 || v.width != 800 || v.height != 400 {
		t.Errorf("Expected viewport (0, 0, 800, 400), got (%d, %d, %d, %d)", v.x, v.y, v.width, v.height)
	}

	if SyncViewport(v, s, 2) {
		t.Error("SyncViewport without size change must not report a change")
	}
	if v.calls != 1 {
		t.Errorf("Viewport must not be updated without size change, got %d calls", v.calls)
	}
}
