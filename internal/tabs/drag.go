package tabs

import (
	"github.com/justyntemme/chrometabs/internal/debug"
)

// DragState is the coordinator's position in a drag interaction.
type DragState int

const (
	// DragIdle means no sessions exist (empty bar).
	DragIdle DragState = iota
	// DragAttached means sessions are ready and no tab is being dragged.
	DragAttached
	// DragDragging means a tab follows the pointer.
	DragDragging
	// DragAtDropPoint means the dropped tab is pinned at its literal drop pixel.
	DragAtDropPoint
	// DragResetting means the dropped tab is easing into its slot.
	DragResetting
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragAttached:
		return "attached"
	case DragDragging:
		return "dragging"
	case DragAtDropPoint:
		return "at-drop-point"
	case DragResetting:
		return "resetting"
	}
	return "unknown"
}

// session is the per-tab drag baseline captured right after a layout pass.
type session struct {
	handle  Handle
	originX int
}

type coordinator struct {
	sessions map[Handle]*session
	active   *session
	state    DragState
	currentX float64 // Live left edge of the dragged tab
	dropX    float64 // Literal left edge where the tab was released
}

// override returns the offset replacing slot's geometry for the tab h, if any.
func (c *coordinator) override(h Handle, slotOffset int) *Override {
	if c.active == nil || c.active.handle != h {
		return nil
	}
	switch c.state {
	case DragDragging:
		return &Override{Offset: c.currentX, Instant: true}
	case DragAtDropPoint:
		return &Override{Offset: c.dropX, Instant: true}
	case DragResetting:
		return &Override{Offset: float64(slotOffset)}
	}
	return nil
}

// DragState returns the current coordinator state.
func (b *Bar) DragState() DragState { return b.drag.state }

// Dragged returns the tab currently being dragged or settled, or zero.
func (b *Bar) Dragged() Handle {
	if b.drag.active == nil {
		return 0
	}
	return b.drag.active.handle
}

// attach destroys every session and creates a fresh one per tab at the
// positions of the last layout. A drag or settle still running is abandoned.
func (b *Bar) attach() {
	c := &b.drag
	if c.active != nil {
		if t := b.tabs.get(c.active.handle); t != nil {
			t.clear(FlagCurrentlyDragged)
		}
		debug.Log(debug.DRAG, "bar %s: abandoned %s drag of tab %d", b.id, c.state, c.active.handle)
	}
	b.sorting = false
	c.active = nil

	c.sessions = make(map[Handle]*session, b.tabs.len())
	for i, h := range b.tabs.order {
		c.sessions[h] = &session{handle: h, originX: b.position(i)}
	}
	if len(c.sessions) == 0 {
		c.state = DragIdle
	} else {
		c.state = DragAttached
	}
}

// PointerDown activates the pressed tab.
func (b *Bar) PointerDown(h Handle) {
	if b.drag.sessions[h] == nil {
		return
	}
	b.SetCurrent(h)
}

// DragStart begins dragging h once the collaborator has seen enough motion.
func (b *Bar) DragStart(h Handle) {
	c := &b.drag
	if c.state == DragAtDropPoint || c.state == DragResetting {
		b.finishSettle()
	}
	s := c.sessions[h]
	if s == nil || c.state != DragAttached {
		return
	}

	b.clearJustDragged()
	b.tabs.get(h).set(FlagCurrentlyDragged)
	b.sorting = true
	c.active = s
	c.state = DragDragging
	c.currentX = float64(s.originX)
	debug.Log(debug.DRAG, "bar %s: drag start tab %d at x=%d", b.id, h, s.originX)
}

// DragMove places the dragged tab at its session origin plus moveX and, when
// that crosses into another slot, reorders the collection right away. It
// reports whether the order changed.
func (b *Bar) DragMove(h Handle, moveX float64) bool {
	c := &b.drag
	if c.state != DragDragging || c.active == nil || c.active.handle != h {
		return false
	}

	c.currentX = float64(c.active.originX) + moveX

	// Earlier moves in this session may already have shifted the tab.
	current := b.tabs.index(h)
	dest := destinationIndex(c.currentX, b.geometry.EffectiveWidth, b.tabs.len())
	if dest == current {
		return false
	}

	debug.Log(debug.DRAG, "bar %s: tab %d x=%.1f slot %d -> %d", b.id, h, c.currentX, current, dest)
	b.hub.begin()
	defer b.hub.end()
	return b.reorder(h, dest)
}

// DragEnd drops h at finalX, the literal left edge the collaborator left it
// at, and starts the settle sequence. FrameCompleted advances it.
func (b *Bar) DragEnd(h Handle, finalX float64) {
	c := &b.drag
	if c.state != DragDragging || c.active == nil || c.active.handle != h {
		return
	}

	b.layout()
	c.dropX = finalX
	c.state = DragAtDropPoint
	debug.Log(debug.DRAG, "bar %s: drag end tab %d at x=%.1f, slot %d", b.id, h, finalX, b.tabs.index(h))
}

// FrameCompleted tells the bar that the renderer has presented a frame. It
// moves a settling tab one step: from the drop point to easing toward its
// slot, then to settled. It reports whether more frames are needed.
func (b *Bar) FrameCompleted() bool {
	c := &b.drag
	switch c.state {
	case DragAtDropPoint:
		b.sorting = false
		c.state = DragResetting
		return true
	case DragResetting:
		b.finishSettle()
	}
	return false
}

// finishSettle marks the dropped tab as just dragged and rebuilds all
// sessions, since the drop changed indices.
func (b *Bar) finishSettle() {
	c := &b.drag
	if c.active != nil {
		if t := b.tabs.get(c.active.handle); t != nil {
			t.clear(FlagCurrentlyDragged)
			t.set(FlagJustDragged)
		}
		debug.Log(debug.DRAG, "bar %s: tab %d settled", b.id, c.active.handle)
	}
	c.active = nil
	b.hub.begin()
	defer b.hub.end()
	b.attach()
}
