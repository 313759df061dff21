package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/icons"
	"github.com/justyntemme/chrometabs/internal/opener"
	"github.com/justyntemme/chrometabs/internal/tabs"
	"github.com/justyntemme/chrometabs/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Config file path (defaults to ~/.config/chrometabs/config.json)")
	logPath := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	// Log lines would tear the alternate screen
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "chrometabs-tui")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg := config.NewManager()
	if err := cfg.LoadFrom(path); err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}
	tabsCfg := cfg.GetTabsConfig()

	lib := icons.NewLibrary(tabsCfg.IconDir, tabsCfg.IconExtensions)
	if err := lib.Reload(); err != nil {
		log.Printf("Icons: %v", err)
	}

	bar := tabs.New()
	open := opener.New(bar, lib, tabsCfg.CycleIcons)
	open.OpenInitial(tabsCfg.Initial)

	m := tui.NewModel(bar)
	m.NewTab = open.NewTabOptions

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chrometabs-tui: %v\n", err)
		os.Exit(1)
	}
}
