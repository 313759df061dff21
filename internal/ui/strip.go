package ui

import (
	"image"
	"time"

	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/tabs"
)

const (
	defaultTabHeight   = 46
	newTabButtonWidth  = 36
	defaultEaseMillis  = 120
	faviconSize        = 16
	closeButtonSize    = 16
	tabTopPadding      = 8
	tabCornerRadius    = 8
	tabContentPadLeft  = 10
	tabContentPadRight = 8

	// New tabs rise into place from appearRise dp below the strip
	appearRise     = 10
	appearDuration = 120 * time.Millisecond
)

// TabStrip draws a tabs.Bar as a row of chrome-style tabs and feeds pointer
// input back into it. The bar works in dp; the strip converts to pixels only
// when drawing.
type TabStrip struct {
	bar      *tabs.Bar
	favicons *FaviconCache

	ShowNewTabButton bool
	EaseDuration     time.Duration
	TabHeight        unit.Dp

	hotkeys  *config.HotkeyMatcher
	darkMode bool

	drags      map[tabs.Handle]*TabDrag
	closes     map[tabs.Handle]*widget.Clickable
	slides     map[tabs.Handle]*slide
	appear     map[tabs.Handle]time.Time // When each just-added tab was first drawn
	newTab     widget.Clickable
	background gesture.Click

	dragOrigin  float32 // Dragged tab's x (dp) when the drag started
	settleShown bool    // A settle frame was presented and awaits FrameCompleted
	lastRules   string  // Last logged slot stylesheet
}

// NewTabStrip creates a strip for bar. favicons may be nil.
func NewTabStrip(bar *tabs.Bar, favicons *FaviconCache) *TabStrip {
	return &TabStrip{
		bar:              bar,
		favicons:         favicons,
		ShowNewTabButton: true,
		EaseDuration:     defaultEaseMillis * time.Millisecond,
		TabHeight:        defaultTabHeight,
		drags:            make(map[tabs.Handle]*TabDrag),
		closes:           make(map[tabs.Handle]*widget.Clickable),
		slides:           make(map[tabs.Handle]*slide),
		appear:           make(map[tabs.Handle]time.Time),
	}
}

// Bar returns the bar the strip renders
func (s *TabStrip) Bar() *tabs.Bar {
	return s.bar
}

// SetHotkeys configures the keyboard shortcuts from config
func (s *TabStrip) SetHotkeys(cfg config.HotkeysConfig) {
	s.hotkeys = config.NewHotkeyMatcher(cfg)
	debug.Log(debug.UI, "Hotkeys configured: NewTab=%s, CloseTab=%s, NextTab=%s, PrevTab=%s",
		s.hotkeys.NewTab.String(), s.hotkeys.CloseTab.String(),
		s.hotkeys.NextTab.String(), s.hotkeys.PrevTab.String())
}

func (s *TabStrip) SetDarkMode(dark bool) {
	s.darkMode = dark
	applyTheme(dark)
}

func (s *TabStrip) DarkMode() bool {
	return s.darkMode
}

// Layout handles last frame's input, then draws the strip. The returned event
// carries requests the application must fulfil (new tab, close, hotkeys).
func (s *TabStrip) Layout(gtx layout.Context, th *material.Theme) (layout.Dimensions, UIEvent) {
	now := gtx.Now

	// The previous frame showed a settle step; let the bar take the next one.
	if s.settleShown {
		s.settleShown = false
		s.bar.FrameCompleted()
	}
	s.bar.Tick(now)

	pxPerDp := gtx.Metric.PxPerDp
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	width := gtx.Constraints.Max.X
	height := gtx.Dp(s.TabHeight)
	contentPx := width
	if s.ShowNewTabButton {
		contentPx -= gtx.Dp(newTabButtonWidth)
	}
	s.bar.Resize(max(0, int(float32(contentPx)/pxPerDp)))

	evt := s.processHotkeys(gtx)
	if e := s.processBackground(gtx); e.Action != ActionNone {
		evt = e
	}
	if s.newTab.Clicked(gtx) {
		evt = UIEvent{Action: ActionNewTab}
	}

	plan := s.bar.Plan()
	for _, slot := range plan.Slots {
		if e := s.processTab(gtx, plan, slot.Handle, pxPerDp); e.Action != ActionNone {
			evt = e
		}
	}

	// Input may have reordered, activated or dragged tabs
	plan = s.bar.Plan()
	s.prune(plan)
	s.logPlan(plan)

	paint.FillShape(gtx.Ops, colStrip, clip.Rect{Max: image.Pt(width, height)}.Op())

	// Double-click on the empty area adds a tab; tabs registered later sit above it
	bg := clip.Rect{Max: image.Pt(width, height)}.Push(gtx.Ops)
	s.background.Add(gtx.Ops)
	bg.Pop()

	animating := false
	for _, i := range plan.PaintOrder() {
		slot := plan.Slots[i]
		sl := s.slideFor(slot)
		if plan.Sorting || (slot.Override != nil && slot.Override.Instant) {
			sl.jump(float32(slot.X()))
		} else {
			sl.aim(now, float32(slot.X()), s.EaseDuration)
		}
		if sl.moving(now) {
			animating = true
		}
		rise, rising := s.appearShift(slot, now)
		if rising {
			animating = true
		}
		s.drawTab(gtx, th, slot, sl.value(now)*pxPerDp, int(rise*pxPerDp+0.5), height)
	}

	if s.ShowNewTabButton {
		x := newTabButtonX(plan) * pxPerDp
		s.drawNewTabButton(gtx, int(x), height)
	}

	switch s.bar.DragState() {
	case tabs.DragAtDropPoint, tabs.DragResetting:
		s.settleShown = true
		animating = true
	}
	if animating {
		gtx.Execute(op.InvalidateCmd{})
	}
	if deadline := s.bar.NextDeadline(); !deadline.IsZero() {
		gtx.Execute(op.InvalidateCmd{At: deadline})
	}

	return layout.Dimensions{Size: image.Pt(width, height)}, evt
}

// processTab applies one tab's pointer input to the bar.
func (s *TabStrip) processTab(gtx layout.Context, plan tabs.Plan, h tabs.Handle, pxPerDp float32) UIEvent {
	d := s.dragFor(h)
	for _, ev := range d.Update(gtx) {
		switch ev.Kind {
		case TabPressed:
			s.bar.PointerDown(h)
		case TabDragStarted:
			s.bar.DragStart(h)
			if s.bar.Dragged() == h {
				if i := s.bar.Index(h); i >= 0 {
					s.dragOrigin = float32(s.bar.Plan().Slots[i].X())
				}
				debug.Log(debug.UI_EVENT, "drag start tab %d at %.1fdp", h, s.dragOrigin)
			}
		case TabDragMoved:
			s.bar.DragMove(h, float64(s.travel(ev.DX, plan, pxPerDp)))
		case TabDropped:
			dx := s.travel(ev.DX, plan, pxPerDp)
			s.bar.DragEnd(h, float64(s.dragOrigin+dx))
			debug.Log(debug.UI_EVENT, "drop tab %d at %.1fdp", h, s.dragOrigin+dx)
		}
	}

	if c := s.closes[h]; c != nil && c.Clicked(gtx) {
		return UIEvent{Action: ActionCloseTab, Tab: h}
	}
	return UIEvent{}
}

// travel converts pointer travel in pixels to dp, keeping the tab inside the strip.
func (s *TabStrip) travel(dxPx float32, plan tabs.Plan, pxPerDp float32) float32 {
	return clampTravel(dxPx/pxPerDp, s.dragOrigin, float32(plan.TabWidth), float32(plan.ContainerWidth))
}

func (s *TabStrip) processBackground(gtx layout.Context) UIEvent {
	var evt UIEvent
	for {
		e, ok := s.background.Update(gtx.Source)
		if !ok {
			break
		}
		if e.Kind == gesture.KindClick && e.NumClicks == 2 {
			evt = UIEvent{Action: ActionNewTab}
		}
	}
	return evt
}

func (s *TabStrip) processHotkeys(gtx layout.Context) UIEvent {
	if s.hotkeys == nil {
		return UIEvent{}
	}

	var filters []event.Filter
	for _, h := range s.hotkeys.All() {
		filters = append(filters, h.Filter(nil))
	}

	var evt UIEvent
	for {
		e, ok := gtx.Event(filters...)
		if !ok {
			break
		}
		k, ok := e.(key.Event)
		if !ok || k.State != key.Press {
			continue
		}
		debug.Log(debug.UI_EVENT, "Key pressed: name=%q mods=0x%x", k.Name, k.Modifiers)
		if e := matchHotkey(s.hotkeys, k, s.bar.Current()); e.Action != ActionNone {
			evt = e
		}
	}
	return evt
}

// matchHotkey maps a key press to the strip action it triggers
func matchHotkey(m *config.HotkeyMatcher, k key.Event, current tabs.Handle) UIEvent {
	switch {
	case m.NewTab.Matches(k):
		return UIEvent{Action: ActionNewTab}
	case m.CloseTab.Matches(k):
		return UIEvent{Action: ActionCloseTab, Tab: current}
	case m.NextTab.Matches(k):
		return UIEvent{Action: ActionNextTab}
	case m.PrevTab.Matches(k):
		return UIEvent{Action: ActionPrevTab}
	case m.MoveTabLeft.Matches(k):
		return UIEvent{Action: ActionMoveTabLeft, Tab: current}
	case m.MoveTabRight.Matches(k):
		return UIEvent{Action: ActionMoveTabRight, Tab: current}
	case m.ToggleTheme.Matches(k):
		return UIEvent{Action: ActionToggleTheme}
	}
	for i, h := range m.SelectTab {
		if h.Matches(k) {
			return UIEvent{Action: ActionSelectTab, Index: i}
		}
	}
	return UIEvent{}
}

func (s *TabStrip) dragFor(h tabs.Handle) *TabDrag {
	d := s.drags[h]
	if d == nil {
		d = &TabDrag{}
		s.drags[h] = d
	}
	return d
}

func (s *TabStrip) closeFor(h tabs.Handle) *widget.Clickable {
	c := s.closes[h]
	if c == nil {
		c = &widget.Clickable{}
		s.closes[h] = c
	}
	return c
}

// slideFor returns the tab's slide, starting new tabs at their target.
func (s *TabStrip) slideFor(slot tabs.Slot) *slide {
	sl := s.slides[slot.Handle]
	if sl == nil {
		sl = newSlide(float32(slot.X()))
		s.slides[slot.Handle] = sl
	}
	return sl
}

// prune forgets widget state of removed tabs
func (s *TabStrip) prune(plan tabs.Plan) {
	if len(s.slides) <= len(plan.Slots) && len(s.drags) <= len(plan.Slots) &&
		len(s.closes) <= len(plan.Slots) && len(s.appear) <= len(plan.Slots) {
		return
	}
	live := make(map[tabs.Handle]bool, len(plan.Slots))
	for _, slot := range plan.Slots {
		live[slot.Handle] = true
	}
	for h := range s.slides {
		if !live[h] {
			delete(s.slides, h)
		}
	}
	for h := range s.drags {
		if !live[h] {
			delete(s.drags, h)
		}
	}
	for h := range s.closes {
		if !live[h] {
			delete(s.closes, h)
		}
	}
	for h := range s.appear {
		if !live[h] {
			delete(s.appear, h)
		}
	}
}

// logPlan dumps the slot stylesheet under LAYOUT whenever it changes.
func (s *TabStrip) logPlan(plan tabs.Plan) {
	if !debug.IsEnabled(debug.LAYOUT) {
		return
	}
	rules := plan.Stylesheet()
	if rules == s.lastRules {
		return
	}
	s.lastRules = rules
	debug.Log(debug.LAYOUT, "strip plan %s:\n%s", plan.Instance, rules)
}

// appearShift returns how far (dp) below its resting place a just-added tab
// is drawn at now, and whether it is still rising.
func (s *TabStrip) appearShift(slot tabs.Slot, now time.Time) (float32, bool) {
	if !slot.Flags.Has(tabs.FlagJustAdded) {
		delete(s.appear, slot.Handle)
		return 0, false
	}
	start, ok := s.appear[slot.Handle]
	if !ok {
		start = now
		s.appear[slot.Handle] = start
	}
	t := float32(now.Sub(start)) / float32(appearDuration)
	if t >= 1 {
		return 0, false
	}
	return appearRise * (1 - easeInOut(max(t, 0))), true
}

// newTabButtonX returns where the "+" button goes (dp), just past the last
// tab's slot.
func newTabButtonX(plan tabs.Plan) float32 {
	x := float32(len(plan.Slots)*plan.EffectiveWidth + tabs.OverlapDistance)
	if limit := float32(plan.ContainerWidth); x > limit {
		x = limit
	}
	return x
}
