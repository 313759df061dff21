package ui

import "github.com/justyntemme/chrometabs/internal/tabs"

type UIAction int

const (
	ActionNone UIAction = iota
	ActionNewTab
	ActionCloseTab // Tab holds the tab to close
	ActionNextTab
	ActionPrevTab
	ActionMoveTabLeft
	ActionMoveTabRight
	ActionSelectTab // Index holds the slot to activate
	ActionToggleTheme
)

var actionNames = [...]string{
	ActionNone:         "none",
	ActionNewTab:       "new-tab",
	ActionCloseTab:     "close-tab",
	ActionNextTab:      "next-tab",
	ActionPrevTab:      "prev-tab",
	ActionMoveTabLeft:  "move-tab-left",
	ActionMoveTabRight: "move-tab-right",
	ActionSelectTab:    "select-tab",
	ActionToggleTheme:  "toggle-theme",
}

func (a UIAction) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// UIEvent is a request from the tab strip that the application decides how
// to fulfil. Drag and activation go to the bar directly and never show up here.
type UIEvent struct {
	Action UIAction
	Tab    tabs.Handle
	Index  int
}
