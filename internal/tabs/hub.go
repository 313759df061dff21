package tabs

// EventKind names a lifecycle event.
type EventKind int

const (
	EventTabAdded EventKind = iota
	EventTabRemoved
	EventActiveTabChanged
	EventTabMoved
)

func (k EventKind) String() string {
	switch k {
	case EventTabAdded:
		return "tab-added"
	case EventTabRemoved:
		return "tab-removed"
	case EventActiveTabChanged:
		return "active-tab-changed"
	case EventTabMoved:
		return "tab-moved"
	}
	return "unknown"
}

// Event is delivered to subscribers after the mutation that raised it has
// finished. Title is captured at emit time since a removed tab is no longer
// reachable through its handle.
type Event struct {
	Kind  EventKind
	Tab   Handle
	Title string
	Index int // Position of the tab when the event was raised
}

// hub queues events raised while a mutation is running and flushes them once
// the outermost mutation returns.
type hub struct {
	subs    map[int]func(Event)
	nextID  int
	pending []Event
	depth   int
}

func newHub() *hub {
	return &hub{subs: make(map[int]func(Event))}
}

func (h *hub) subscribe(fn func(Event)) func() {
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	return func() { delete(h.subs, id) }
}

func (h *hub) emit(e Event) {
	h.pending = append(h.pending, e)
}

func (h *hub) begin() { h.depth++ }

func (h *hub) end() {
	h.depth--
	if h.depth > 0 {
		return
	}
	for len(h.pending) > 0 {
		e := h.pending[0]
		h.pending = h.pending[1:]
		for id := 0; id < h.nextID; id++ {
			if fn, ok := h.subs[id]; ok {
				// Subscribers may mutate the bar; their events queue behind this one.
				h.depth++
				fn(e)
				h.depth--
			}
		}
	}
}
