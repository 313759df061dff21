package tabs

import (
	"fmt"
	"strings"

	"github.com/justyntemme/chrometabs/internal/debug"
)

// Override replaces a slot's geometric offset while a tab is being dragged
// or settling after a drop.
type Override struct {
	Offset  float64
	Instant bool // Place the tab at Offset without easing
}

// Slot is the render instruction for one tab.
type Slot struct {
	Index    int
	Handle   Handle
	Title    string
	Favicon  string
	Offset   int // Geometric left offset for Index
	Width    int
	Flags    Flag
	Override *Override
}

// X returns where the renderer should aim to draw the slot.
func (s Slot) X() float64 {
	if s.Override != nil {
		return s.Override.Offset
	}
	return float64(s.Offset)
}

// Plan is the complete set of render instructions for one bar instance.
type Plan struct {
	Instance       string
	ContainerWidth int
	TabWidth       int
	EffectiveWidth int
	Sorting        bool // Reflow is instant while a drag is running
	Slots          []Slot
}

// Stylesheet renders the slot offsets as a stylesheet scoped to the bar
// instance, one rule per ordinal slot.
func (p Plan) Stylesheet() string {
	var sb strings.Builder
	for _, s := range p.Slots {
		fmt.Fprintf(&sb, ".chrome-tabs[data-chrome-tabs-instance-id=%q] .chrome-tab:nth-child(%d) { transform: translate3d(%dpx, 0, 0) }\n",
			p.Instance, s.Index+1, s.Offset)
	}
	return sb.String()
}

// PaintOrder returns slot indexes in the order renderers should paint them:
// inactive tabs, then the current tab, then the dragged one on top. Hit
// testing walks it backwards.
func (p Plan) PaintOrder() []int {
	order := make([]int, 0, len(p.Slots))
	current, dragged := -1, -1
	for i, slot := range p.Slots {
		switch {
		case slot.Flags.Has(FlagCurrentlyDragged):
			dragged = i
		case slot.Flags.Has(FlagCurrent):
			current = i
		default:
			order = append(order, i)
		}
	}
	if current >= 0 {
		order = append(order, current)
	}
	if dragged >= 0 {
		order = append(order, dragged)
	}
	return order
}

// Layout recomputes geometry for the current width and tab count, reapplies
// widths and size flags, and rebuilds every drag session.
func (b *Bar) Layout() Plan {
	b.hub.begin()
	defer b.hub.end()

	b.layout()
	b.attach()
	return b.Plan()
}

// layout is one full pass over the collection. It never touches drag sessions;
// callers follow it with attach once any drag bookkeeping is done.
func (b *Bar) layout() {
	g := ComputeGeometry(b.width, b.tabs.len())
	b.geometry = g

	size := sizeFlagsFor(g.EffectiveWidth)
	b.clearJustDragged()
	for _, h := range b.tabs.order {
		t := b.tabs.arena[h]
		t.Width = g.TabWidth
		t.clear(sizeFlags)
		t.set(size)
	}

	debug.Log(debug.LAYOUT, "bar %s: width=%d tabs=%d tabWidth=%d effective=%d flags=%s",
		b.id, b.width, b.tabs.len(), g.TabWidth, g.EffectiveWidth, size)
}

func (b *Bar) clearJustDragged() {
	for _, t := range b.tabs.arena {
		t.clear(FlagJustDragged)
	}
}

// Plan returns the render instructions for the current state. Slots follow the
// live order, so a reorder during a drag moves neighbors without a new layout.
func (b *Bar) Plan() Plan {
	p := Plan{
		Instance:       b.id,
		ContainerWidth: b.width,
		TabWidth:       b.geometry.TabWidth,
		EffectiveWidth: b.geometry.EffectiveWidth,
		Sorting:        b.sorting,
		Slots:          make([]Slot, 0, b.tabs.len()),
	}
	for i, h := range b.tabs.order {
		t := b.tabs.arena[h]
		s := Slot{
			Index:   i,
			Handle:  h,
			Title:   t.Title,
			Favicon: t.Favicon,
			Offset:  b.position(i),
			Width:   t.Width,
			Flags:   t.Flags,
		}
		s.Override = b.drag.override(h, s.Offset)
		p.Slots = append(p.Slots, s)
	}
	return p
}

// position returns the geometric offset of slot i, extending the last layout's
// step when the slot did not exist at that time.
func (b *Bar) position(i int) int {
	if i < len(b.geometry.Positions) {
		return b.geometry.Positions[i]
	}
	return i * b.geometry.EffectiveWidth
}
