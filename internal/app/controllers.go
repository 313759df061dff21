package app

import (
	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/debug"
	"github.com/justyntemme/chrometabs/internal/icons"
	"github.com/justyntemme/chrometabs/internal/opener"
	"github.com/justyntemme/chrometabs/internal/tabs"
	"github.com/justyntemme/chrometabs/internal/ui"
)

// TabController turns tab strip requests into bar mutations. It runs on the
// UI goroutine only.
type TabController struct {
	bar    *tabs.Bar
	opener *opener.Opener
}

// NewTabController creates a controller. lib may be nil.
func NewTabController(bar *tabs.Bar, lib *icons.Library, cycleIcons bool) *TabController {
	return &TabController{bar: bar, opener: opener.New(bar, lib, cycleIcons)}
}

// OpenInitial adds the startup tabs and activates the first one.
func (c *TabController) OpenInitial(entries []config.TabEntry) {
	c.opener.OpenInitial(entries)
}

// Handle applies evt to the bar. It reports whether evt was a tab action.
func (c *TabController) Handle(evt ui.UIEvent) bool {
	switch evt.Action {
	case ui.ActionNewTab:
		c.bar.Add(c.opener.NewTabOptions()...)
	case ui.ActionCloseTab:
		c.bar.Remove(evt.Tab)
	case ui.ActionNextTab:
		c.bar.Next()
	case ui.ActionPrevTab:
		c.bar.Prev()
	case ui.ActionMoveTabLeft:
		if i := c.bar.Index(evt.Tab); i > 0 {
			c.bar.Reorder(evt.Tab, i-1)
		}
	case ui.ActionMoveTabRight:
		if i := c.bar.Index(evt.Tab); i >= 0 && i < c.bar.Len()-1 {
			c.bar.Reorder(evt.Tab, i+1)
		}
	case ui.ActionSelectTab:
		if t, ok := c.bar.At(evt.Index); ok {
			c.bar.SetCurrent(t.Handle)
		}
	default:
		return false
	}
	debug.Log(debug.APP, "handled %s", evt.Action)
	return true
}

// windowTitle is the window caption for the current tab title
func windowTitle(tabTitle string) string {
	if tabTitle == "" {
		return "chrometabs"
	}
	return tabTitle + " - chrometabs"
}
