package canvas

// BoxSize is a ResizeObserverSize.
type BoxSize struct {
	InlineSize float64
	BlockSize  float64
}

// ResizeEntry is a ResizeObserverEntry.
// Box size lists are empty when the browser does not provide them.
type ResizeEntry struct {
	Target                    Surface
	DevicePixelContentBoxSize []BoxSize
	ContentBoxSize            []BoxSize
	ContentRectWidth          float64
	ContentRectHeight         float64
}

// DeviceSize returns the size of the observed content box in device pixels,
// using the most precise information available.
func (e ResizeEntry) DeviceSize(dpr float64) (width, height int) {
	switch {
	case len(e.DevicePixelContentBoxSize) > 0:
		s := e.DevicePixelContentBoxSize[0]
		return int(s.InlineSize), int(s.BlockSize)
	case len(e.ContentBoxSize) > 0:
		s := e.ContentBoxSize[0]
		return devicePixels(s.InlineSize, dpr), devicePixels(s.BlockSize, dpr)
	default:
		return devicePixels(e.ContentRectWidth, dpr), devicePixels(e.ContentRectHeight, dpr)
	}
}

// OnResizeObserved resizes the target of each entry and reports whether
// any of them changed.
// Unlike SyncViewport, it does not update the viewport.
func OnResizeObserved(entries []ResizeEntry, dpr float64) bool {
	var changed bool
	for _, e := range entries {
		w, h := e.DeviceSize(dpr)
		if Resize(e.Target, w, h) {
			changed = true
		}
	}
	return changed
}
