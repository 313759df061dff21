package ui

import (
	"testing"
	"time"

	"gioui.org/io/key"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/tabs"
)

func TestContentFor(t *testing.T) {
	cur := tabs.FlagCurrent
	small := tabs.FlagSmall
	smaller := tabs.FlagSmall | tabs.FlagSmaller
	mini := tabs.FlagSmall | tabs.FlagSmaller | tabs.FlagMini

	testCases := []struct {
		name     string
		flags    tabs.Flag
		favicon  bool
		expected tabContent
	}{
		{"full inactive", 0, true, tabContent{favicon: true, title: true, close: true}},
		{"full without favicon", 0, false, tabContent{title: true, close: true}},
		{"small inactive hides close", small, true, tabContent{favicon: true, title: true}},
		{"small current keeps close", small | cur, true, tabContent{favicon: true, title: true, close: true}},
		{"smaller hides title", smaller, true, tabContent{favicon: true, centered: true}},
		{"smaller current", smaller | cur, true, tabContent{favicon: true, close: true, centered: true}},
		{"mini inactive shows favicon", mini, true, tabContent{favicon: true, centered: true}},
		{"mini current shows close", mini | cur, true, tabContent{close: true, centered: true}},
	}
	for _, tc := range testCases {
		if got := contentFor(tc.flags, tc.favicon); got != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}

func TestAppearShift(t *testing.T) {
	bar := tabs.New(tabs.WithWidth(600))
	added := bar.Add()
	s := NewTabStrip(bar, nil)
	slot := bar.Plan().Slots[0]
	if !slot.Flags.Has(tabs.FlagJustAdded) {
		t.Fatal("expected a just-added slot")
	}

	start := time.Now()
	if rise, rising := s.appearShift(slot, start); rise != appearRise || !rising {
		t.Errorf("first frame: expected %v rising, got %v %v", appearRise, rise, rising)
	}
	rise, rising := s.appearShift(slot, start.Add(appearDuration/2))
	if !rising || rise <= 0 || rise >= appearRise {
		t.Errorf("halfway: expected a partial rise, got %v %v", rise, rising)
	}
	if rise, rising := s.appearShift(slot, start.Add(appearDuration)); rise != 0 || rising {
		t.Errorf("after the animation: expected resting, got %v %v", rise, rising)
	}

	slot.Flags &^= tabs.FlagJustAdded
	if rise, rising := s.appearShift(slot, start); rise != 0 || rising {
		t.Errorf("expired flag: expected resting, got %v %v", rise, rising)
	}
	if _, ok := s.appear[added.Handle]; ok {
		t.Error("expected appear state dropped once the flag expires")
	}
}

func TestLogPlan(t *testing.T) {
	debug.Enable(debug.LAYOUT)
	defer debug.Disable(debug.LAYOUT)

	bar := tabs.New(tabs.WithWidth(600))
	bar.Add()
	s := NewTabStrip(bar, nil)
	plan := bar.Plan()
	s.logPlan(plan)

	expected := ""
	if debug.Enabled {
		expected = plan.Stylesheet()
	}
	if s.lastRules != expected {
		t.Errorf("expected %q, got %q", expected, s.lastRules)
	}
}

func TestClampTravel(t *testing.T) {
	testCases := []struct {
		name                   string
		dx, origin, tab, width float32
		expected               float32
	}{
		{"inside", 10, 100, 50, 400, 10},
		{"past left edge", -150, 100, 50, 400, -100},
		{"past right edge", 500, 100, 50, 400, 250},
		{"tab wider than strip", 30, 0, 500, 400, 0},
	}
	for _, tc := range testCases {
		if got := clampTravel(tc.dx, tc.origin, tc.tab, tc.width); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestPastThreshold(t *testing.T) {
	if pastThreshold(2, 3) || pastThreshold(-2.9, 3) {
		t.Error("small travel should not start a drag")
	}
	if !pastThreshold(3, 3) || !pastThreshold(-4, 3) {
		t.Error("travel at the threshold should start a drag")
	}
}

func TestNewTabButtonX(t *testing.T) {
	b := tabs.New(tabs.WithWidth(900))
	for i := 0; i < 3; i++ {
		b.Add()
	}
	plan := b.Plan()
	expected := float32(3*plan.EffectiveWidth + tabs.OverlapDistance)
	if got := newTabButtonX(plan); got != expected {
		t.Errorf("expected %v, got %v", expected, got)
	}

	full := tabs.New(tabs.WithWidth(100))
	for i := 0; i < 5; i++ {
		full.Add()
	}
	if got := newTabButtonX(full.Plan()); got != 100 {
		t.Errorf("button should stay inside the strip, got %v", got)
	}
}

func TestMatchHotkey(t *testing.T) {
	m := config.NewHotkeyMatcher(config.HotkeysConfig{
		NewTab:       "Ctrl+T",
		CloseTab:     "Ctrl+W",
		NextTab:      "Ctrl+Tab",
		PrevTab:      "Ctrl+Shift+Tab",
		MoveTabLeft:  "Ctrl+Shift+PageUp",
		MoveTabRight: "Ctrl+Shift+PageDown",
		ToggleTheme:  "Ctrl+Shift+L",
		SelectTab:    []string{"Ctrl+1", "Ctrl+2"},
	})
	current := tabs.Handle(7)

	testCases := []struct {
		name     string
		ev       key.Event
		expected UIEvent
	}{
		{"new", key.Event{Name: "T", Modifiers: key.ModCtrl}, UIEvent{Action: ActionNewTab}},
		{"close current", key.Event{Name: "W", Modifiers: key.ModCtrl}, UIEvent{Action: ActionCloseTab, Tab: current}},
		{"next", key.Event{Name: key.NameTab, Modifiers: key.ModCtrl}, UIEvent{Action: ActionNextTab}},
		{"prev", key.Event{Name: key.NameTab, Modifiers: key.ModCtrl | key.ModShift}, UIEvent{Action: ActionPrevTab}},
		{"move left", key.Event{Name: key.NamePageUp, Modifiers: key.ModCtrl | key.ModShift}, UIEvent{Action: ActionMoveTabLeft, Tab: current}},
		{"move right", key.Event{Name: key.NamePageDown, Modifiers: key.ModCtrl | key.ModShift}, UIEvent{Action: ActionMoveTabRight, Tab: current}},
		{"theme", key.Event{Name: "L", Modifiers: key.ModCtrl | key.ModShift}, UIEvent{Action: ActionToggleTheme}},
		{"select second", key.Event{Name: "2", Modifiers: key.ModCtrl}, UIEvent{Action: ActionSelectTab, Index: 1}},
		{"unbound", key.Event{Name: "Q", Modifiers: key.ModCtrl}, UIEvent{}},
		{"missing modifier", key.Event{Name: "T"}, UIEvent{}},
	}
	for _, tc := range testCases {
		if got := matchHotkey(m, tc.ev, current); got != tc.expected {
			t.Errorf("%s: expected %+v, got %+v", tc.name, tc.expected, got)
		}
	}
}

func TestUIAction_String(t *testing.T) {
	if ActionCloseTab.String() != "close-tab" {
		t.Errorf("expected close-tab, got %s", ActionCloseTab.String())
	}
	if UIAction(99).String() != "unknown" {
		t.Errorf("expected unknown, got %s", UIAction(99).String())
	}
}

func TestApplyTheme(t *testing.T) {
	defer applyTheme(false)

	applyTheme(true)
	if colStrip != darkColors.strip || colTitle != darkColors.title {
		t.Error("dark palette not applied")
	}
	applyTheme(false)
	if colStrip != lightColors.strip || colTabActive != lightColors.tabActive {
		t.Error("light palette not restored")
	}
}
