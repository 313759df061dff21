// Package tabs implements the layout and drag-reorder engine behind a
// browser-style tab strip. It owns no drawing: renderers feed it container
// widths and pointer events and draw the Plan it returns.
package tabs

import (
	"strings"
	"time"
)

// DefaultTitle is the title given to tabs created without one.
const DefaultTitle = "New tab"

// JustAddedDuration is how long a new tab keeps FlagJustAdded.
const JustAddedDuration = 500 * time.Millisecond

// Handle identifies a tab for its whole lifetime. The zero Handle never
// refers to a tab.
type Handle uint64

// Flag is a bit in a tab's state set.
type Flag uint16

const (
	FlagCurrent Flag = 1 << iota
	FlagJustAdded
	FlagJustDragged
	FlagCurrentlyDragged
	FlagSmall
	FlagSmaller
	FlagMini
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{FlagCurrent, "current"},
	{FlagJustAdded, "just-added"},
	{FlagJustDragged, "just-dragged"},
	{FlagCurrentlyDragged, "currently-dragged"},
	{FlagSmall, "is-small"},
	{FlagSmaller, "is-smaller"},
	{FlagMini, "is-mini"},
}

// Has reports whether all bits of f are set.
func (fl Flag) Has(f Flag) bool { return fl&f == f }

func (fl Flag) String() string {
	var names []string
	for _, n := range flagNames {
		if fl.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, ",")
}

const sizeFlags = FlagSmall | FlagSmaller | FlagMini

// Tab is a single record in a Bar.
type Tab struct {
	Handle  Handle
	Title   string
	Favicon string // Path or URL of the icon, empty for none
	Width   int    // Rendered width from the last layout pass
	Flags   Flag

	justAddedUntil time.Time
}

// Current reports whether the tab is the bar's active tab.
func (t *Tab) Current() bool { return t.Flags.Has(FlagCurrent) }

func (t *Tab) set(f Flag)   { t.Flags |= f }
func (t *Tab) clear(f Flag) { t.Flags &^= f }

// TabOption overrides one of the default tab properties.
type TabOption func(*Tab)

// WithTitle sets the tab title.
func WithTitle(title string) TabOption {
	return func(t *Tab) { t.Title = title }
}

// WithFavicon sets the favicon reference. An empty ref removes the icon.
func WithFavicon(ref string) TabOption {
	return func(t *Tab) { t.Favicon = ref }
}
