//go:build !darwin

package config

// DefaultHotkeys returns the default keyboard shortcuts for Windows/Linux
func DefaultHotkeys() HotkeysConfig {
	return HotkeysConfig{
		NewTab:       "Ctrl+T",
		CloseTab:     "Ctrl+W",
		NextTab:      "Ctrl+Tab",
		PrevTab:      "Ctrl+Shift+Tab",
		MoveTabLeft:  "Ctrl+Shift+PageUp",
		MoveTabRight: "Ctrl+Shift+PageDown",
		ToggleTheme:  "Ctrl+Shift+L",
		SelectTab:    []string{"Ctrl+1", "Ctrl+2", "Ctrl+3", "Ctrl+4", "Ctrl+5", "Ctrl+6", "Ctrl+7", "Ctrl+8"},
	}
}
