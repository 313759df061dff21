package ui

import (
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
)

// dragThreshold is how far (in dp) the pointer must travel before a press
// turns into a drag.
const dragThreshold = 3

type TabDragKind int

const (
	TabPressed TabDragKind = iota
	TabDragStarted
	TabDragMoved
	TabDropped
)

// TabDragEvent is one step of a press or drag on a tab. DX is the horizontal
// pointer travel since the press, in pixels.
type TabDragEvent struct {
	Kind TabDragKind
	DX   float32
}

// TabDrag handles press and horizontal drag on one tab. It combines
// gesture.Click for the press with gesture.Drag for the movement, the way a
// tab needs both activation and reordering on the same area.
//
// Gio reports pointer positions relative to where the handler was registered
// on the previous frame. Tabs move while dragged, so TabDrag remembers that
// offset and reports travel in strip coordinates.
type TabDrag struct {
	click gesture.Click
	drag  gesture.Drag

	pid      pointer.ID
	pressX   float32 // Strip x of the press
	areaX    float32 // Strip x the hit area was registered at
	lastDX   float32
	pressed  bool
	dragging bool
}

// Dragging reports whether the drag threshold has been crossed.
func (d *TabDrag) Dragging() bool {
	return d.dragging
}

// Hovered reports whether a pointer is over the tab.
func (d *TabDrag) Hovered() bool {
	return d.click.Hovered()
}

// Update drains pending pointer events. Call it before Add.
func (d *TabDrag) Update(gtx layout.Context) []TabDragEvent {
	var out []TabDragEvent

	for {
		e, ok := d.click.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindPress {
			out = append(out, TabDragEvent{Kind: TabPressed})
		}
	}

	for {
		e, ok := d.drag.Update(gtx.Metric, gtx.Source, gesture.Horizontal)
		if !ok {
			break
		}
		x := e.Position.X + d.areaX
		switch e.Kind {
		case pointer.Press:
			d.pid = e.PointerID
			d.pressX = x
			d.lastDX = 0
			d.pressed = true
			d.dragging = false
		case pointer.Drag:
			if !d.pressed || e.PointerID != d.pid {
				continue
			}
			dx := x - d.pressX
			if !d.dragging {
				if !pastThreshold(dx, float32(gtx.Dp(dragThreshold))) {
					continue
				}
				d.dragging = true
				out = append(out, TabDragEvent{Kind: TabDragStarted})
			}
			d.lastDX = dx
			out = append(out, TabDragEvent{Kind: TabDragMoved, DX: dx})
		case pointer.Release, pointer.Cancel:
			if d.dragging {
				out = append(out, TabDragEvent{Kind: TabDropped, DX: d.lastDX})
			}
			d.pressed = false
			d.dragging = false
		}
	}
	return out
}

// Add registers the gesture handlers for the current clip area, which the
// caller has pushed at strip x areaX.
func (d *TabDrag) Add(ops *op.Ops, areaX float32) {
	d.areaX = areaX
	d.click.Add(ops)
	d.drag.Add(ops)
}

func pastThreshold(dx, threshold float32) bool {
	if dx < 0 {
		dx = -dx
	}
	return dx >= threshold
}

// clampTravel keeps a dragged tab inside the strip: its left edge stays in
// [0, containerWidth-tabWidth].
func clampTravel(dx, originX, tabWidth, containerWidth float32) float32 {
	lo := -originX
	hi := containerWidth - tabWidth - originX
	if hi < lo {
		hi = lo
	}
	if dx < lo {
		return lo
	}
	if dx > hi {
		return hi
	}
	return dx
}
