package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Following the XDG Base Directory spec:
// User config: ~/.config/pmpts/ (or $XDG_CONFIG_HOME/pmpts/)

const (
	// ConfigDir is the subdirectory name under .config
	ConfigDir = "pmpts"
	// ConfigFile is the filename for persisted settings
	ConfigFile = "config.json"
	// UndoFile is the filename for the undo record
	UndoFile = "undo.json"

	// EnvRoot overrides the configured prompts directory when set
	EnvRoot = "PMPTS_ROOT"
)

// Paths holds the locations pmpts reads and writes outside the prompts directory
type Paths struct {
	// Home is the user's home directory
	Home string

	// ConfigDir is ~/.config/pmpts (or $XDG_CONFIG_HOME/pmpts)
	ConfigDir string
	// ConfigFile is ~/.config/pmpts/config.json
	ConfigFile string
	// UndoFile is ~/.config/pmpts/undo.json
	UndoFile string
}

// Config represents the persisted settings
type Config struct {
	Root string `json:"root,omitempty"`
}

// GetPaths returns the standard paths for pmpts
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	// Follow XDG Base Directory spec
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	configDir := filepath.Join(configHome, ConfigDir)

	return &Paths{
		Home:       home,
		ConfigDir:  configDir,
		ConfigFile: filepath.Join(configDir, ConfigFile),
		UndoFile:   filepath.Join(configDir, UndoFile),
	}, nil
}

// Load reads the config from disk. A missing file yields a zero config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk, creating the config directory if needed
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ResolveRoot determines the prompts directory: the PMPTS_ROOT environment
// variable wins, then the configured root, then the per-OS default.
func ResolveRoot(cfg *Config) (string, error) {
	if env := os.Getenv(EnvRoot); env != "" {
		return ExpandPath(env)
	}
	if cfg != nil && cfg.Root != "" {
		return ExpandPath(cfg.Root)
	}
	return DefaultRoot()
}

// DefaultRoot returns the VS Code user prompts directory for this OS
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Code", "User", "prompts"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			appData = filepath.Join(home, "AppData", "Roaming")
		}
		return filepath.Join(appData, "Code", "User", "prompts"), nil
	default:
		configHome := os.Getenv("XDG_CONFIG_HOME")
		if configHome == "" {
			configHome = filepath.Join(home, ".config")
		}
		return filepath.Join(configHome, "Code", "User", "prompts"), nil
	}
}

// ExpandPath expands a leading ~ and makes the path absolute
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}
	return filepath.Abs(path)
}
