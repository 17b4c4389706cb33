package canvas

import (
	"syscall/js"
)

type Canvas js.Value

var _ Surface = Canvas{}

func (c Canvas) ClientWidth() int {
	return js.Value(c).Get("clientWidth").Int()
}

func (c Canvas) ClientHeight() int {
	return js.Value(c).Get("clientHeight").Int()
}

func (c Canvas) Width() int {
	return js.Value(c).Get("width").Int()
}

func (c Canvas) Height() int {
	return js.Value(c).Get("height").Int()
}

func (c Canvas) SetWidth(width int) {
	js.Value(c).Set("width", width)
}

func (c Canvas) SetHeight(height int) {
	js.Value(c).Set("height", height)
}

func (c Canvas) BoundingClientRect() (width, height float64) {
	rect := js.Value(c).Call("getBoundingClientRect")
	return rect.Get("width").Float(), rect.Get("height").Float()
}

// DevicePixelRatio returns window.devicePixelRatio, or 1 if unavailable.
func DevicePixelRatio() float64 {
	dpr := js.Global().Get("devicePixelRatio")
	if dpr.Type() != js.TypeNumber || dpr.Float() <= 0 {
		return 1
	}
	return dpr.Float()
}

// ObserveResize watches the canvas elements with a ResizeObserver and
// resizes them on every layout change. cb, if not nil, is called after
// resizing with whether any of the canvases changed.
// The returned function disconnects the observer.
func ObserveResize(cb func(changed bool), targets ...Canvas) func() {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		changed := OnResizeObserved(parseResizeEntries(args[0]), DevicePixelRatio())
		if cb != nil {
			cb(changed)
		}
		return nil
	})
	observer := js.Global().Get("ResizeObserver").New(fn)
	for _, t := range targets {
		observeTarget(observer, js.Value(t))
	}
	return func() {
		observer.Call("disconnect")
		fn.Release()
	}
}

func observeTarget(observer, target js.Value) {
	defer func() {
		// Browsers without device-pixel-content-box reject the option.
		if r := recover(); r != nil {
			observer.Call("observe", target, map[string]interface{}{"box": "content-box"})
		}
	}()
	observer.Call("observe", target, map[string]interface{}{"box": "device-pixel-content-box"})
}

func parseResizeEntries(entries js.Value) []ResizeEntry {
	n := entries.Length()
	ret := make([]ResizeEntry, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, parseResizeEntry(entries.Index(i)))
	}
	return ret
}

func parseResizeEntry(entry js.Value) ResizeEntry {
	rect := entry.Get("contentRect")
	return ResizeEntry{
		Target:                    Canvas(entry.Get("target")),
		DevicePixelContentBoxSize: parseBoxSizes(entry.Get("devicePixelContentBoxSize")),
		ContentBoxSize:            parseBoxSizes(entry.Get("contentBoxSize")),
		ContentRectWidth:          rect.Get("width").Float(),
		ContentRectHeight:         rect.Get("height").Float(),
	}
}

func parseBoxSizes(sizes js.Value) []BoxSize {
	if sizes.IsUndefined() || sizes.IsNull() {
		return nil
	}
	// Early implementations report a single ResizeObserverSize.
	if sizes.Get("length").IsUndefined() {
		return []BoxSize{parseBoxSize(sizes)}
	}
	n := sizes.Length()
	ret := make([]BoxSize, 0, n)
	for i := 0; i < n; i++ {
		ret = append(ret, parseBoxSize(sizes.Index(i)))
	}
	return ret
}

func parseBoxSize(size js.Value) BoxSize {
	return BoxSize{
		InlineSize: size.Get("inlineSize").Float(),
		BlockSize:  size.Get("blockSize").Float(),
	}
}
