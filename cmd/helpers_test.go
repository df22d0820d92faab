package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pmpts/pmpts/internal/config"
)

// setupRoot points pmpts at a fresh prompts directory and an isolated
// config home for the duration of one test.
func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv(config.EnvRoot, root)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return root
}

func writePrompt(t *testing.T, root, fileName, content string) string {
	t.Helper()
	path := filepath.Join(root, fileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// captureStdout runs fn with os.Stdout redirected and returns what it
// printed.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
