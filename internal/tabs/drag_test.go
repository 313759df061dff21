package tabs

import (
	"testing"
)

func TestReorder(t *testing.T) {
	testCases := []struct {
		name     string
		move     string
		dest     int
		expected string
		changed  bool
	}{
		{"backward to front", "c", 0, "cabde", true},
		{"backward one", "c", 1, "acbde", true},
		{"forward one", "b", 2, "acbde", true},
		{"forward to last", "a", 4, "bcdea", true},
		{"one past last appends", "b", 5, "acdeb", true},
		{"far past last appends", "b", 50, "acdeb", true},
		{"same slot", "c", 2, "abcde", false},
		{"last past end", "e", 5, "abcde", false},
		{"negative", "c", -1, "abcde", false},
	}

	for _, tc := range testCases {
		b := newTestBar(1200, 5)
		changed := b.Reorder(handleOf(t, b, tc.move), tc.dest)
		if got := titles(b); got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
		if changed != tc.changed {
			t.Errorf("%s: expected changed=%v, got %v", tc.name, tc.changed, changed)
		}
	}
}

func TestReorder_DoesNotLayout(t *testing.T) {
	b := newTestBar(1200, 3)
	h := handleOf(t, b, "c")
	b.DragStart(h)
	b.Reorder(h, 0)
	if b.DragState() != DragDragging {
		t.Error("reorder must not rebuild drag sessions")
	}
}

func TestReorder_MonotonicEqualsSingleMove(t *testing.T) {
	for origin := 0; origin < 6; origin++ {
		for final := 0; final < 6; final++ {
			stepped := newTestBar(1500, 6)
			direct := newTestBar(1500, 6)
			title := string(rune('a' + origin))

			h := handleOf(t, stepped, title)
			step := 1
			if final < origin {
				step = -1
			}
			for i := origin; i != final; {
				i += step
				stepped.Reorder(h, i)
			}
			direct.Reorder(handleOf(t, direct, title), final)

			if titles(stepped) != titles(direct) {
				t.Errorf("%d -> %d: stepped %s, direct %s", origin, final, titles(stepped), titles(direct))
			}
		}
	}
}

func TestDrag_Lifecycle(t *testing.T) {
	b := newTestBar(900, 5)
	ew := float64(b.Geometry().EffectiveWidth)
	h := handleOf(t, b, "c")

	b.PointerDown(h)
	if b.Current() != h {
		t.Error("pointer down should activate the tab")
	}

	b.DragStart(h)
	tab, _ := b.Get(h)
	if !tab.Flags.Has(FlagCurrentlyDragged) || !b.Sorting() || b.DragState() != DragDragging {
		t.Fatalf("drag start did not mark dragging: flags %q sorting %v state %s", tab.Flags, b.Sorting(), b.DragState())
	}

	b.DragMove(h, 10)
	slot := b.Plan().Slots[2]
	if slot.Override == nil || !slot.Override.Instant || slot.Override.Offset != 2*ew+10 {
		t.Errorf("expected instant override at %v, got %+v", 2*ew+10, slot.Override)
	}
	if slot.X() != 2*ew+10 {
		t.Errorf("expected slot X %v, got %v", 2*ew+10, slot.X())
	}

	b.DragMove(h, ew)
	if titles(b) != "abdce" {
		t.Fatalf("expected abdce after crossing the midpoint, got %s", titles(b))
	}

	b.DragEnd(h, 3*ew+7)
	if b.DragState() != DragAtDropPoint {
		t.Fatalf("expected at-drop-point, got %s", b.DragState())
	}
	slot = b.Plan().Slots[3]
	if slot.Handle != h || slot.Override == nil || !slot.Override.Instant || slot.Override.Offset != 3*ew+7 {
		t.Errorf("expected tab pinned at the drop pixel, got %+v", slot)
	}
	if !b.Sorting() {
		t.Error("sorting should hold until the first frame after the drop")
	}

	if !b.FrameCompleted() {
		t.Error("expected more frames while resetting")
	}
	slot = b.Plan().Slots[3]
	if b.DragState() != DragResetting || b.Sorting() {
		t.Errorf("expected resetting without sorting, got %s sorting=%v", b.DragState(), b.Sorting())
	}
	if slot.Override == nil || slot.Override.Instant || slot.Override.Offset != float64(slot.Offset) {
		t.Errorf("expected eased override to slot offset %d, got %+v", slot.Offset, slot.Override)
	}

	if b.FrameCompleted() {
		t.Error("expected settle to finish")
	}
	tab, _ = b.Get(h)
	if b.DragState() != DragAttached || b.Dragged() != 0 {
		t.Errorf("expected attached after settle, got %s", b.DragState())
	}
	if tab.Flags.Has(FlagCurrentlyDragged) || !tab.Flags.Has(FlagJustDragged) {
		t.Errorf("expected just-dragged only, got %q", tab.Flags)
	}
	if b.Plan().Slots[3].Override != nil {
		t.Error("override should be cleared once settled")
	}
	if got := b.drag.sessions[h].originX; got != b.Geometry().Positions[3] {
		t.Errorf("session not rebuilt at new slot: origin %d", got)
	}

	b.FrameCompleted()
	if b.DragState() != DragAttached {
		t.Error("extra frames should not change state")
	}

	// The next drag clears the highlight.
	other := handleOf(t, b, "a")
	b.DragStart(other)
	if tab, _ := b.Get(h); tab.Flags.Has(FlagJustDragged) {
		t.Error("drag start should clear just-dragged")
	}
}

func TestDrag_ScenarioD(t *testing.T) {
	b := newTestBar(900, 5)
	ew := float64(b.Geometry().EffectiveWidth)
	h := handleOf(t, b, "c")

	moves := 0
	b.Subscribe(func(e Event) {
		if e.Kind == EventTabMoved {
			moves++
		}
	})

	b.DragStart(h)
	// Left edge at 2*ew + 1.5*ew: the half-width offset lands in slot 4.
	if !b.DragMove(h, 1.5*ew) {
		t.Fatal("expected a reorder")
	}
	if b.Index(h) != 4 || moves != 1 {
		t.Fatalf("expected one move to slot 4, got slot %d after %d moves", b.Index(h), moves)
	}

	for dx := 1.5 * ew; dx < 2*ew; dx++ {
		b.DragMove(h, dx)
	}
	if moves != 1 {
		t.Errorf("moving within slot 4 reordered %d extra times", moves-1)
	}
}

func TestDrag_PixelByPixel(t *testing.T) {
	b := newTestBar(900, 5)
	ew := b.Geometry().EffectiveWidth
	h := handleOf(t, b, "c")

	reorders := 0
	b.DragStart(h)
	for dx := 0; dx <= ew*3/2; dx++ {
		if b.DragMove(h, float64(dx)) {
			reorders++
		}
	}
	if reorders != 2 || b.Index(h) != 4 {
		t.Errorf("expected exactly two crossings ending in slot 4, got %d ending in %d", reorders, b.Index(h))
	}

	// Dragging back reverses the order one crossing at a time.
	for dx := ew * 3 / 2; dx >= -2*ew; dx-- {
		b.DragMove(h, float64(dx))
	}
	if titles(b) != "cabde" {
		t.Errorf("expected cabde after dragging to the front, got %s", titles(b))
	}
}

func TestDrag_UpperClampMovesToEnd(t *testing.T) {
	// Three tabs at max width leave spare room past the last slot.
	b := newTestBar(2000, 3)
	h := handleOf(t, b, "a")

	b.DragStart(h)
	if !b.DragMove(h, 1000) {
		t.Fatal("expected the tab to move")
	}
	if titles(b) != "bca" {
		t.Errorf("expected bca, got %s", titles(b))
	}
	if b.DragMove(h, 1100) {
		t.Error("tab already at the end should not reorder again")
	}
}

func TestDrag_IgnoresStrayEvents(t *testing.T) {
	b := newTestBar(900, 3)
	a := handleOf(t, b, "a")
	c := handleOf(t, b, "c")

	if b.DragMove(a, 500) {
		t.Error("move before drag start should be ignored")
	}
	b.DragEnd(a, 10)
	if b.DragState() != DragAttached {
		t.Error("end before drag start should be ignored")
	}

	b.DragStart(a)
	b.DragStart(c)
	if b.Dragged() != a {
		t.Error("second drag start should be ignored while dragging")
	}
	if b.DragMove(c, 500) {
		t.Error("move for a tab that is not dragged should be ignored")
	}
	b.DragStart(Handle(999))
	b.PointerDown(Handle(999))
	if b.Current() != c {
		t.Error("unknown pointer down changed the current tab")
	}
}

func TestDrag_RemoveLastTabMidDrag(t *testing.T) {
	b := newTestBar(900, 1)
	h := handleOf(t, b, "a")
	b.DragStart(h)
	b.Remove(h)

	if b.DragState() != DragIdle || b.Sorting() || b.Dragged() != 0 {
		t.Errorf("expected idle coordinator, got %s sorting=%v", b.DragState(), b.Sorting())
	}
	if b.DragMove(h, 100) || b.FrameCompleted() {
		t.Error("events after teardown should be ignored")
	}
}

func TestDrag_AddAbandonsDrag(t *testing.T) {
	b := newTestBar(900, 3)
	h := handleOf(t, b, "b")
	b.DragStart(h)
	b.Add()

	tab, _ := b.Get(h)
	if tab.Flags.Has(FlagCurrentlyDragged) {
		t.Error("abandoned drag left the tab flagged")
	}
	if b.DragState() != DragAttached || b.Sorting() {
		t.Errorf("expected fresh sessions, got %s", b.DragState())
	}
	if len(b.drag.sessions) != 4 {
		t.Errorf("expected 4 sessions, got %d", len(b.drag.sessions))
	}
}

func TestDrag_StartDuringSettleFinishesIt(t *testing.T) {
	b := newTestBar(900, 3)
	a := handleOf(t, b, "a")
	c := handleOf(t, b, "c")

	b.DragStart(a)
	b.DragEnd(a, 0)
	b.DragStart(c)

	if b.DragState() != DragDragging || b.Dragged() != c {
		t.Fatalf("expected c dragging, got %s on %d", b.DragState(), b.Dragged())
	}
	if tab, _ := b.Get(a); tab.Flags.Has(FlagCurrentlyDragged) {
		t.Error("settled tab still flagged as dragged")
	}
}

func TestDragState_String(t *testing.T) {
	testCases := []struct {
		state    DragState
		expected string
	}{
		{DragIdle, "idle"},
		{DragAttached, "attached"},
		{DragDragging, "dragging"},
		{DragAtDropPoint, "at-drop-point"},
		{DragResetting, "resetting"},
		{DragState(42), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("DragState(%d).String(): expected %q, got %q", tc.state, tc.expected, got)
		}
	}
}
