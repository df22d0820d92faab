package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetPathsHonorsXDG(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	paths, err := GetPaths()
	if err != nil {
		t.Fatalf("GetPaths() error = %v", err)
	}

	wantDir := filepath.Join(tmp, "pmpts")
	if paths.ConfigDir != wantDir {
		t.Errorf("ConfigDir = %q, want %q", paths.ConfigDir, wantDir)
	}
	if paths.ConfigFile != filepath.Join(wantDir, "config.json") {
		t.Errorf("ConfigFile = %q", paths.ConfigFile)
	}
	if paths.UndoFile != filepath.Join(wantDir, "undo.json") {
		t.Errorf("UndoFile = %q", paths.UndoFile)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Root != "" {
		t.Errorf("missing config should be zero, got Root = %q", cfg.Root)
	}
}

func TestSaveAndLoad(t *testing.T) {
	// Save creates the parent directory itself.
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	if err := Save(path, &Config{Root: "/tmp/prompts"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Root != "/tmp/prompts" {
		t.Errorf("Root = %v, want %v", cfg.Root, "/tmp/prompts")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() accepted malformed JSON")
	}
}

func TestResolveRootPrecedence(t *testing.T) {
	// Environment variable beats the configured root.
	t.Setenv(EnvRoot, "/env/prompts")
	got, err := ResolveRoot(&Config{Root: "/cfg/prompts"})
	if err != nil {
		t.Fatalf("ResolveRoot() error = %v", err)
	}
	if got != filepath.FromSlash("/env/prompts") {
		t.Errorf("ResolveRoot() = %q, want env override", got)
	}

	// Configured root beats the default.
	t.Setenv(EnvRoot, "")
	os.Unsetenv(EnvRoot)
	got, err = ResolveRoot(&Config{Root: "/cfg/prompts"})
	if err != nil {
		t.Fatalf("ResolveRoot() error = %v", err)
	}
	if got != filepath.FromSlash("/cfg/prompts") {
		t.Errorf("ResolveRoot() = %q, want configured root", got)
	}
}

func TestResolveRootDefault(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("default path shape differs on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	os.Unsetenv("XDG_CONFIG_HOME")
	os.Unsetenv(EnvRoot)

	got, err := ResolveRoot(&Config{})
	if err != nil {
		t.Fatalf("ResolveRoot() error = %v", err)
	}

	var want string
	if runtime.GOOS == "darwin" {
		want = filepath.Join(home, "Library", "Application Support", "Code", "User", "prompts")
	} else {
		want = filepath.Join(home, ".config", "Code", "User", "prompts")
	}
	if got != want {
		t.Errorf("ResolveRoot() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"tilde alone", "~", home},
		{"tilde prefix", "~/prompts", filepath.Join(home, "prompts")},
		{"absolute untouched", "/var/prompts", filepath.FromSlash("/var/prompts")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.path)
			if err != nil {
				t.Fatalf("ExpandPath(%q) error = %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestExpandPathRelative(t *testing.T) {
	got, err := ExpandPath("prompts")
	if err != nil {
		t.Fatalf("ExpandPath() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(relative) = %q, want absolute", got)
	}
}
