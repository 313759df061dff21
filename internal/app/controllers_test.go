package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/icons"
	"github.com/justyntemme/chrometabs/internal/tabs"
	"github.com/justyntemme/chrometabs/internal/ui"
)

func newIconLibrary(t *testing.T, names ...string) *icons.Library {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	lib := icons.NewLibrary(dir, []string{".png"})
	if err := lib.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	return lib
}

func titles(bar *tabs.Bar) []string {
	var out []string
	for _, t := range bar.Tabs() {
		out = append(out, t.Title)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestHandle_NewTabCyclesIcons(t *testing.T) {
	lib := newIconLibrary(t, "google-mail.png", "yahoo.png")
	bar := tabs.New(tabs.WithWidth(800))
	c := NewTabController(bar, lib, true)

	c.OpenInitial([]config.TabEntry{{Title: "Start"}})
	for i := 0; i < 2; i++ {
		c.Handle(ui.UIEvent{Action: ui.ActionNewTab})
	}

	expected := []string{"Start", "Google mail", "Yahoo"}
	if got := titles(bar); !equalStrings(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name     string
		evt      func(bar *tabs.Bar) ui.UIEvent
		expected []string
		current  string
	}{
		{
			name:     "close current",
			evt:      func(bar *tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionCloseTab, Tab: bar.Current()} },
			expected: []string{"a", "c"},
			current:  "c",
		},
		{
			name:     "next",
			evt:      func(*tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionNextTab} },
			expected: []string{"a", "b", "c"},
			current:  "c",
		},
		{
			name:     "prev",
			evt:      func(*tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionPrevTab} },
			expected: []string{"a", "b", "c"},
			current:  "a",
		},
		{
			name:     "move left",
			evt:      func(bar *tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionMoveTabLeft, Tab: bar.Current()} },
			expected: []string{"b", "a", "c"},
			current:  "b",
		},
		{
			name:     "move right",
			evt:      func(bar *tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionMoveTabRight, Tab: bar.Current()} },
			expected: []string{"a", "c", "b"},
			current:  "b",
		},
		{
			name:     "select index",
			evt:      func(*tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionSelectTab, Index: 2} },
			expected: []string{"a", "b", "c"},
			current:  "c",
		},
		{
			name:     "select out of range",
			evt:      func(*tabs.Bar) ui.UIEvent { return ui.UIEvent{Action: ui.ActionSelectTab, Index: 7} },
			expected: []string{"a", "b", "c"},
			current:  "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := tabs.New(tabs.WithWidth(800))
			c := NewTabController(bar, nil, false)
			var b tabs.Handle
			for _, title := range []string{"a", "b", "c"} {
				tab := bar.Add(tabs.WithTitle(title))
				if title == "b" {
					b = tab.Handle
				}
			}
			bar.SetCurrent(b)

			if !c.Handle(tt.evt(bar)) {
				t.Fatalf("expected event to be handled")
			}
			if got := titles(bar); !equalStrings(got, tt.expected) {
				t.Errorf("expected order %v, got %v", tt.expected, got)
			}
			cur, _ := bar.Get(bar.Current())
			if cur.Title != tt.current {
				t.Errorf("expected current %q, got %q", tt.current, cur.Title)
			}
		})
	}
}

func TestHandle_EdgesAndUnknown(t *testing.T) {
	bar := tabs.New(tabs.WithWidth(800))
	c := NewTabController(bar, nil, false)
	a := bar.Add(tabs.WithTitle("a"))
	bar.Add(tabs.WithTitle("b"))

	c.Handle(ui.UIEvent{Action: ui.ActionMoveTabLeft, Tab: a.Handle})
	c.Handle(ui.UIEvent{Action: ui.ActionMoveTabRight, Tab: bar.Current()})
	if got := titles(bar); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("expected moves at the ends to be ignored, got %v", got)
	}

	if c.Handle(ui.UIEvent{Action: ui.ActionToggleTheme}) {
		t.Errorf("expected theme toggle to be left to the caller")
	}
}

func TestWindowTitle(t *testing.T) {
	if got := windowTitle(""); got != "chrometabs" {
		t.Errorf("expected bare app name, got %q", got)
	}
	if got := windowTitle("Google"); got != "Google - chrometabs" {
		t.Errorf("expected tab title prefix, got %q", got)
	}
}
