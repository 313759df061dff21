package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config holds all user-configurable settings loaded from config.json
type Config struct {
	UI      UIConfig      `json:"ui"`
	Tabs    TabsConfig    `json:"tabs"`
	Hotkeys HotkeysConfig `json:"hotkeys"`
}

// UIConfig holds window and tab strip appearance settings
type UIConfig struct {
	Theme            string `json:"theme"`            // "light" or "dark"
	WindowWidth      int    `json:"windowWidth"`      // Initial window width in dp
	WindowHeight     int    `json:"windowHeight"`     // Initial window height in dp
	TabHeight        int    `json:"tabHeight"`        // Tab strip height in dp
	ShowNewTabButton bool   `json:"showNewTabButton"` // Draw the "+" button after the last tab
	EaseMillis       int    `json:"easeMillis"`       // Duration of reflow and settle easing
}

// TabsConfig holds the tabs opened at startup and where favicons come from
type TabsConfig struct {
	Initial        []TabEntry `json:"initial"`
	IconDir        string     `json:"iconDir"`        // Directory scanned for favicons ("" disables)
	IconExtensions []string   `json:"iconExtensions"` // Extensions accepted as favicons
	WatchIconDir   bool       `json:"watchIconDir"`   // Rescan when the directory changes
	CycleIcons     bool       `json:"cycleIcons"`     // New tabs take the next icon from the library
}

// TabEntry describes one tab opened at startup
type TabEntry struct {
	Title   string `json:"title"`
	Favicon string `json:"favicon,omitempty"`
}

// Manager handles loading, saving, and accessing configuration
type Manager struct {
	mu       sync.RWMutex
	config   *Config
	path     string
	parseErr error // Stores parsing error if config failed to load
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	return &Manager{
		config: DefaultConfig(),
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Theme:            "light",
			WindowWidth:      960,
			WindowHeight:     120,
			TabHeight:        46,
			ShowNewTabButton: true,
			EaseMillis:       120,
		},
		Tabs: TabsConfig{
			Initial: []TabEntry{
				{Title: "Google"},
				{Title: "Facebook"},
			},
			IconDir:        filepath.Join(configDir(), "icons"),
			IconExtensions: []string{".png", ".jpg", ".jpeg", ".gif", ".webp"},
			WatchIconDir:   true,
			CycleIcons:     true,
		},
		Hotkeys: DefaultHotkeys(),
	}
}

func configDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chrometabs")
}

// ConfigPath returns the config file path: ~/.config/chrometabs/config.json
// This is consistent across all platforms (Windows, macOS, Linux)
func ConfigPath() string {
	return filepath.Join(configDir(), "config.json")
}

// Load reads the configuration from the default config path
func (m *Manager) Load() error {
	return m.LoadFrom(ConfigPath())
}

// LoadFrom reads the configuration from path.
// If the file doesn't exist, creates it with defaults.
// If parsing fails, stores the error and keeps defaults.
func (m *Manager) LoadFrom(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.path = path
	m.parseErr = nil

	// Ensure config directory exists
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Printf("Config: failed to create directory %s: %v", dir, err)
		return err
	}

	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		log.Printf("Config: creating default config at %s", m.path)
		m.config = DefaultConfig()
		if saveErr := m.saveUnlocked(); saveErr != nil {
			log.Printf("Config: failed to save default config: %v", saveErr)
			return saveErr
		}
		return nil
	}
	if err != nil {
		log.Printf("Config: failed to read %s: %v", m.path, err)
		return err
	}

	// Start from defaults so sections missing from the file keep sane values
	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		// Store error for UI display, use defaults
		log.Printf("Config: JSON parse error: %v", err)
		m.parseErr = err
		m.config = DefaultConfig()
		return nil // Don't return error - we're using defaults
	}

	log.Printf("Config: loaded from %s", m.path)
	m.config = cfg
	return nil
}

// saveUnlocked saves config without acquiring lock (caller must hold lock)
func (m *Manager) saveUnlocked() error {
	if m.path == "" {
		m.path = ConfigPath()
	}
	data, err := json.MarshalIndent(m.config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.path, data, 0o644)
}

// Save writes the current configuration to disk
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnlocked()
}

// Path returns the file the configuration was loaded from
func (m *Manager) Path() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.path
}

// Get returns a copy of the current configuration
func (m *Manager) Get() Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return *DefaultConfig()
	}
	return *m.config
}

// ParseError returns the parsing error if config failed to load
func (m *Manager) ParseError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.parseErr
}

// SetTheme updates the theme setting
func (m *Manager) SetTheme(theme string) {
	m.mu.Lock()
	m.config.UI.Theme = theme
	m.mu.Unlock()
	if err := m.Save(); err != nil {
		log.Printf("Config: failed to save theme: %v", err)
	}
}

// IsDarkMode returns true if dark mode is enabled
func (m *Manager) IsDarkMode() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.UI.Theme == "dark"
}

// GetUIConfig returns the window and strip settings
func (m *Manager) GetUIConfig() UIConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.UI
}

// GetTabsConfig returns the startup tab and icon settings
func (m *Manager) GetTabsConfig() TabsConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Tabs
}

// GetHotkeys returns the configured keyboard shortcuts
func (m *Manager) GetHotkeys() HotkeysConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.Hotkeys
}

// GenerateConfig backs up the config at path and writes a fresh default one.
// Returns the backup path if a backup was created, or empty string if no existing config
func GenerateConfig(path string) (backupPath string, err error) {
	if _, err := os.Stat(path); err == nil {
		timestamp := time.Now().Format("20060102-150405")
		backupPath = filepath.Join(filepath.Dir(path), "config.backup."+timestamp+".json")

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read existing config: %w", err)
		}
		if err := os.WriteFile(backupPath, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write backup: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return backupPath, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(DefaultConfig(), "", "  ")
	if err != nil {
		return backupPath, fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return backupPath, fmt.Errorf("failed to write config: %w", err)
	}

	return backupPath, nil
}
