package cmd

import (
	"strings"
	"testing"
)

func TestSearchNonPositiveLimitShowsAll(t *testing.T) {
	root := setupRoot(t)
	writePrompt(t, root, "alpha-one.prompt.md", "one\n")
	writePrompt(t, root, "alpha-two.prompt.md", "two\n")

	orig := searchLimit
	searchLimit = -1
	defer func() { searchLimit = orig }()

	out := captureStdout(t, func() { runSearch(searchCmd, []string{"alpha"}) })
	for _, name := range []string{"alpha-one", "alpha-two"} {
		if !strings.Contains(out, name) {
			t.Errorf("search output missing %q:\n%s", name, out)
		}
	}
}

func TestSearchLimitTruncates(t *testing.T) {
	root := setupRoot(t)
	writePrompt(t, root, "alpha-one.prompt.md", "one\n")
	writePrompt(t, root, "alpha-two.prompt.md", "two\n")

	orig := searchLimit
	searchLimit = 1
	defer func() { searchLimit = orig }()

	out := captureStdout(t, func() { runSearch(searchCmd, []string{"alpha"}) })
	if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != 1 {
		t.Errorf("limited search printed %d lines, want 1:\n%s", got, out)
	}
}
