package config

import (
	"strings"

	"gioui.org/io/event"
	"gioui.org/io/key"
)

// Hotkey represents a parsed keyboard shortcut
type Hotkey struct {
	Key       key.Name
	Modifiers key.Modifiers
}

// ParseHotkey parses a hotkey string like "Ctrl+Shift+N" into a Hotkey struct
func ParseHotkey(s string) Hotkey {
	if s == "" {
		return Hotkey{}
	}

	var mods key.Modifiers
	var rawKeyPart string

	parts := strings.Split(s, "+")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		switch strings.ToLower(part) {
		case "ctrl", "control":
			mods |= key.ModCtrl
		case "shift":
			mods |= key.ModShift
		case "alt", "option":
			mods |= key.ModAlt
		case "cmd", "command":
			mods |= key.ModCommand // Use ModCommand for macOS Cmd key
		case "super", "meta", "win", "windows":
			mods |= key.ModSuper // Use ModSuper for Windows logo key
		default:
			// This is the key name
			rawKeyPart = part
		}
	}

	// Convert the key part to key.Name
	keyName := parseKeyName(rawKeyPart)

	// If Shift is held and this is a number key, convert to the shifted character
	// because Gio reports the shifted character (e.g., Shift+1 = "!")
	// Note: Punctuation should be specified directly (e.g., "Cmd+Shift+>" not "Cmd+Shift+.")
	if mods.Contain(key.ModShift) {
		if shifted, ok := shiftedNumbers[string(keyName)]; ok {
			keyName = key.Name(shifted)
		}
	}

	return Hotkey{Key: keyName, Modifiers: mods}
}

// shiftedNumbers maps number keys to their shifted equivalents (US keyboard layout)
// This is needed because Gio reports the shifted character, not the physical key
// Note: Punctuation should be specified directly as the shifted character (e.g., ">" not ".")
var shiftedNumbers = map[string]string{
	"1": "!", "2": "@", "3": "#", "4": "$", "5": "%",
	"6": "^", "7": "&", "8": "*", "9": "(", "0": ")",
}

// unshiftedNumbers is the reverse mapping for display purposes
var unshiftedNumbers = map[string]string{
	"!": "1", "@": "2", "#": "3", "$": "4", "%": "5",
	"^": "6", "&": "7", "*": "8", "(": "9", ")": "0",
}

// namedKeys maps lowercase config spellings to Gio key names
var namedKeys = map[string]key.Name{
	"f1": key.NameF1, "f2": key.NameF2, "f5": key.NameF5, "f11": key.NameF11,
	"up": key.NameUpArrow, "uparrow": key.NameUpArrow,
	"down": key.NameDownArrow, "downarrow": key.NameDownArrow,
	"left": key.NameLeftArrow, "leftarrow": key.NameLeftArrow,
	"right": key.NameRightArrow, "rightarrow": key.NameRightArrow,
	"home": key.NameHome, "end": key.NameEnd,
	"pageup": key.NamePageUp, "pgup": key.NamePageUp,
	"pagedown": key.NamePageDown, "pgdn": key.NamePageDown, "pgdown": key.NamePageDown,
	"enter": key.NameReturn, "return": key.NameReturn,
	"tab":    key.NameTab,
	"space":  key.NameSpace,
	"delete": key.NameDeleteForward, "del": key.NameDeleteForward,
	"escape": key.NameEscape, "esc": key.NameEscape,
}

// parseKeyName converts a key string to Gio's key.Name
func parseKeyName(s string) key.Name {
	// Single letters are case insensitive; key.Name uses uppercase
	if len(s) == 1 {
		return key.Name(strings.ToUpper(s))
	}
	if name, ok := namedKeys[strings.ToLower(s)]; ok {
		return name
	}
	// Unknown names pass through unchanged
	return key.Name(s)
}

// Matches checks if a key event matches this hotkey
// Uses exact matching for modifiers to distinguish between similar hotkeys
// (e.g., Ctrl+H vs Ctrl+Shift+H)
func (h Hotkey) Matches(k key.Event) bool {
	if h.Key == "" {
		return false
	}
	return k.Name == h.Key && k.Modifiers == h.Modifiers
}

// IsEmpty returns true if the hotkey is not configured
func (h Hotkey) IsEmpty() bool {
	return h.Key == ""
}

// String returns a human-readable representation of the hotkey
func (h Hotkey) String() string {
	if h.Key == "" {
		return ""
	}

	var parts []string
	if h.Modifiers.Contain(key.ModCtrl) {
		parts = append(parts, "Ctrl")
	}
	if h.Modifiers.Contain(key.ModCommand) {
		parts = append(parts, "Cmd")
	}
	if h.Modifiers.Contain(key.ModShift) {
		parts = append(parts, "Shift")
	}
	if h.Modifiers.Contain(key.ModAlt) {
		parts = append(parts, "Alt")
	}
	if h.Modifiers.Contain(key.ModSuper) {
		parts = append(parts, "Super")
	}

	// For display, convert shifted number symbols back to their original keys
	keyStr := string(h.Key)
	if h.Modifiers.Contain(key.ModShift) {
		if original, ok := unshiftedNumbers[keyStr]; ok {
			keyStr = original
		}
	}
	parts = append(parts, keyStr)
	return strings.Join(parts, "+")
}

// Filter returns a key.Filter that matches this hotkey
func (h Hotkey) Filter(focus event.Tag) key.Filter {
	return key.Filter{
		Focus:    focus,
		Name:     h.Key,
		Required: h.Modifiers,
	}
}

// HotkeysConfig holds the tab strip shortcuts as strings like "Ctrl+T"
type HotkeysConfig struct {
	NewTab       string `json:"newTab"`
	CloseTab     string `json:"closeTab"`
	NextTab      string `json:"nextTab"`
	PrevTab      string `json:"prevTab"`
	MoveTabLeft  string `json:"moveTabLeft"`
	MoveTabRight string `json:"moveTabRight"`
	ToggleTheme  string `json:"toggleTheme"`

	// SelectTab[i] activates the tab in slot i
	SelectTab []string `json:"selectTab"`
}

// HotkeyMatcher holds parsed shortcuts ready for key event matching
type HotkeyMatcher struct {
	NewTab       Hotkey
	CloseTab     Hotkey
	NextTab      Hotkey
	PrevTab      Hotkey
	MoveTabLeft  Hotkey
	MoveTabRight Hotkey
	ToggleTheme  Hotkey
	SelectTab    []Hotkey
}

// NewHotkeyMatcher creates a matcher from config
func NewHotkeyMatcher(cfg HotkeysConfig) *HotkeyMatcher {
	m := &HotkeyMatcher{
		NewTab:       ParseHotkey(cfg.NewTab),
		CloseTab:     ParseHotkey(cfg.CloseTab),
		NextTab:      ParseHotkey(cfg.NextTab),
		PrevTab:      ParseHotkey(cfg.PrevTab),
		MoveTabLeft:  ParseHotkey(cfg.MoveTabLeft),
		MoveTabRight: ParseHotkey(cfg.MoveTabRight),
		ToggleTheme:  ParseHotkey(cfg.ToggleTheme),
	}
	for _, s := range cfg.SelectTab {
		m.SelectTab = append(m.SelectTab, ParseHotkey(s))
	}
	return m
}

// All returns every configured hotkey, for registering key filters
func (m *HotkeyMatcher) All() []Hotkey {
	all := []Hotkey{m.NewTab, m.CloseTab, m.NextTab, m.PrevTab, m.MoveTabLeft, m.MoveTabRight, m.ToggleTheme}
	all = append(all, m.SelectTab...)
	out := all[:0]
	for _, h := range all {
		if !h.IsEmpty() {
			out = append(out, h)
		}
	}
	return out
}
