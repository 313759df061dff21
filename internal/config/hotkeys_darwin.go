//go:build darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for macOS
// Uses Cmd in place of Ctrl (macOS convention); tab cycling stays on Ctrl+Tab
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewTab:       "Cmd+T",
		CloseTab:     "Cmd+W",
		NextTab:      "Ctrl+Tab",
		PrevTab:      "Ctrl+Shift+Tab",
		MoveTabLeft:  "Cmd+Alt+Left",
		MoveTabRight: "Cmd+Alt+Right",
		ToggleTheme:  "Cmd+Shift+L",
		SelectTab:    []string{"Cmd+1", "Cmd+2", "Cmd+3", "Cmd+4", "Cmd+5", "Cmd+6", "Cmd+7", "Cmd+8"},
	}
}
