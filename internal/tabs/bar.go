package tabs

import (
	"time"

	"github.com/google/uuid"

	"github.com/justyntemme/chrometabs/internal/debug"
)

// Bar is one tab strip instance. It is not safe for concurrent use: all calls
// are expected from the renderer's event loop.
type Bar struct {
	id       string
	width    int
	tabs     *collection
	geometry Geometry
	sorting  bool
	drag     coordinator
	hub      *hub
	now      func() time.Time
}

// Option configures a Bar.
type Option func(*Bar)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Bar) { b.now = now }
}

// WithWidth sets the initial container width in pixels.
func WithWidth(width int) Option {
	return func(b *Bar) { b.width = max(0, width) }
}

// New creates an empty bar with a unique instance id.
func New(opts ...Option) *Bar {
	b := &Bar{
		id:   uuid.NewString(),
		tabs: newCollection(),
		hub:  newHub(),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.layout()
	b.attach()
	return b
}

// ID returns the instance id that scopes this bar's render plan.
func (b *Bar) ID() string { return b.id }

// Width returns the container width used by the last layout.
func (b *Bar) Width() int { return b.width }

// Geometry returns the result of the last layout pass.
func (b *Bar) Geometry() Geometry { return b.geometry }

// Sorting reports whether a drag is suppressing eased reflow.
func (b *Bar) Sorting() bool { return b.sorting }

// Subscribe registers fn for lifecycle events and returns a function that
// removes it.
func (b *Bar) Subscribe(fn func(Event)) func() {
	return b.hub.subscribe(fn)
}

// Len returns the number of tabs.
func (b *Bar) Len() int { return b.tabs.len() }

// Tabs returns a snapshot of all tabs in layout order.
func (b *Bar) Tabs() []Tab {
	out := make([]Tab, 0, b.tabs.len())
	for _, h := range b.tabs.order {
		out = append(out, *b.tabs.arena[h])
	}
	return out
}

// At returns the tab in slot i.
func (b *Bar) At(i int) (Tab, bool) {
	t := b.tabs.at(i)
	if t == nil {
		return Tab{}, false
	}
	return *t, true
}

// Get returns the tab for h.
func (b *Bar) Get(h Handle) (Tab, bool) {
	t := b.tabs.get(h)
	if t == nil {
		return Tab{}, false
	}
	return *t, true
}

// Index returns the slot of h, or -1.
func (b *Bar) Index(h Handle) int { return b.tabs.index(h) }

// Current returns the active tab handle, or zero when the bar is empty.
func (b *Bar) Current() Handle { return b.tabs.current }

// Add appends a new tab built from the defaults and opts, makes it current and
// lays the bar out again.
func (b *Bar) Add(opts ...TabOption) Tab {
	b.hub.begin()
	defer b.hub.end()

	t := &Tab{Title: DefaultTitle}
	for _, opt := range opts {
		opt(t)
	}
	t.set(FlagJustAdded)
	t.justAddedUntil = b.now().Add(JustAddedDuration)

	b.tabs.append(t)
	b.hub.emit(Event{Kind: EventTabAdded, Tab: t.Handle, Title: t.Title, Index: b.tabs.len() - 1})
	debug.Log(debug.TABS, "bar %s: added tab %d %q", b.id, t.Handle, t.Title)

	b.setCurrent(t.Handle)
	b.layout()
	b.attach()
	return *t
}

// Remove deletes h. Unknown handles are ignored. When h was current the next
// sibling takes over, or the previous one when h was last.
func (b *Bar) Remove(h Handle) {
	t := b.tabs.get(h)
	if t == nil {
		return
	}

	b.hub.begin()
	defer b.hub.end()

	if t.Current() {
		if next := b.tabs.successor(h); next != 0 {
			b.setCurrent(next)
		}
	}

	idx := b.tabs.remove(h)
	b.hub.emit(Event{Kind: EventTabRemoved, Tab: h, Title: t.Title, Index: idx})
	debug.Log(debug.TABS, "bar %s: removed tab %d %q from slot %d", b.id, h, t.Title, idx)

	b.layout()
	b.attach()
}

// SetCurrent makes h the active tab. It does nothing when h is unknown or
// already current.
func (b *Bar) SetCurrent(h Handle) {
	b.hub.begin()
	defer b.hub.end()
	b.setCurrent(h)
}

func (b *Bar) setCurrent(h Handle) {
	if !b.tabs.setCurrent(h) {
		return
	}
	t := b.tabs.get(h)
	b.hub.emit(Event{Kind: EventActiveTabChanged, Tab: h, Title: t.Title, Index: b.tabs.index(h)})
	debug.Log(debug.TABS, "bar %s: current tab is now %d", b.id, h)
}

// Next activates the tab after the current one, wrapping around.
func (b *Bar) Next() { b.cycle(1) }

// Prev activates the tab before the current one, wrapping around.
func (b *Bar) Prev() { b.cycle(-1) }

func (b *Bar) cycle(step int) {
	n := b.tabs.len()
	if n <= 1 {
		return
	}
	i := b.tabs.index(b.tabs.current)
	if i < 0 {
		i = 0
	}
	b.SetCurrent(b.tabs.order[(i+step+n)%n])
}

// Update applies opts to an existing tab. Title and favicon changes do not
// affect geometry, so no layout pass runs.
func (b *Bar) Update(h Handle, opts ...TabOption) {
	t := b.tabs.get(h)
	if t == nil {
		return
	}
	handle, flags, width, until := t.Handle, t.Flags, t.Width, t.justAddedUntil
	for _, opt := range opts {
		opt(t)
	}
	t.Handle, t.Flags, t.Width, t.justAddedUntil = handle, flags, width, until
}

// Reorder moves h to destinationIndex without a layout pass. See collection
// reorder for the before/after rule. It reports whether the order changed.
func (b *Bar) Reorder(h Handle, destinationIndex int) bool {
	b.hub.begin()
	defer b.hub.end()
	return b.reorder(h, destinationIndex)
}

func (b *Bar) reorder(h Handle, dest int) bool {
	if !b.tabs.reorder(h, dest) {
		return false
	}
	t := b.tabs.get(h)
	idx := b.tabs.index(h)
	b.hub.emit(Event{Kind: EventTabMoved, Tab: h, Title: t.Title, Index: idx})
	debug.Log(debug.DRAG, "bar %s: tab %d moved to slot %d", b.id, h, idx)
	return true
}

// Resize records a new container width and lays out again. An unchanged width
// is ignored so that renderers can call Resize every frame.
func (b *Bar) Resize(width int) {
	width = max(0, width)
	if width == b.width {
		return
	}
	b.width = width
	b.Layout()
}

// Tick expires transient flags whose deadline has passed. It reports whether
// anything changed.
func (b *Bar) Tick(now time.Time) bool {
	changed := false
	for _, t := range b.tabs.arena {
		if t.Flags.Has(FlagJustAdded) && !now.Before(t.justAddedUntil) {
			t.clear(FlagJustAdded)
			changed = true
		}
	}
	return changed
}

// NextDeadline returns the earliest pending flag expiry, or the zero time.
func (b *Bar) NextDeadline() time.Time {
	var next time.Time
	for _, t := range b.tabs.arena {
		if !t.Flags.Has(FlagJustAdded) {
			continue
		}
		if next.IsZero() || t.justAddedUntil.Before(next) {
			next = t.justAddedUntil
		}
	}
	return next
}
