package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/justyntemme/chrometabs/internal/app"
	"github.com/justyntemme/chrometabs/internal/config"
	"github.com/justyntemme/chrometabs/internal/store"
)

func main() {
	debug := flag.Bool("debug", false, "Enable verbose debug logging")
	configPath := flag.String("config", "", "Config file path (defaults to ~/.config/chrometabs/config.json)")
	generate := flag.Bool("generate-config", false, "Write a fresh default config, backing up the existing one, clear saved settings, and exit")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = config.ConfigPath()
	}

	if *generate {
		backup, err := config.GenerateConfig(path)
		if err != nil {
			log.Fatalf("Failed to generate config: %v", err)
		}
		if backup != "" {
			fmt.Printf("Backed up existing config to %s\n", backup)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		if err := app.ResetSettings(store.DefaultPath()); err != nil {
			log.Printf("Failed to clear saved settings: %v", err)
		}
		os.Exit(0)
	}

	// Handle OS-specific console visibility
	manageConsole(*debug)

	cfg := config.NewManager()
	if err := cfg.LoadFrom(path); err != nil {
		log.Printf("Config: %v (using defaults)", err)
	}

	app.Main(cfg, *debug)
}
