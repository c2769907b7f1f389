package commands

import (
	"os"
	"path/filepath"

	"github.com/hay-kot/activityboard/internal/board"
	"github.com/hay-kot/activityboard/internal/client"
	"github.com/hay-kot/activityboard/internal/core/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	ServerURL  string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Client talks to the activity service at Config.ServerURL
	Client *client.Client

	// Controller wraps Client with the board's messages and error mapping
	Controller *board.Controller
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "activityboard", "config.yaml")
}
