// Package prompt defines the naming rules and frontmatter format of
// VS Code prompt files.
package prompt

import (
	"strings"
	"time"

	"github.com/pmpts/pmpts/internal/errors"
)

// Suffix is the filename suffix every stored prompt carries.
const Suffix = ".prompt.md"

// Info describes one prompt file in the prompts directory.
type Info struct {
	// Name is the display name, the filename without the suffix
	Name string
	// FileName is the filename inside the prompts directory
	FileName string
	// Path is the absolute path to the file
	Path string

	Size    int64
	ModTime time.Time
}

// Metadata holds the conventional VS Code prompt frontmatter keys.
type Metadata struct {
	Description string   `yaml:"description"`
	Mode        string   `yaml:"mode"`
	Model       string   `yaml:"model"`
	Tools       []string `yaml:"tools"`
}

// Stem returns the prompt name for a filename: the prompt suffix is
// stripped when present, otherwise a single extension is.
func Stem(filename string) string {
	if strings.HasSuffix(filename, Suffix) {
		return strings.TrimSuffix(filename, Suffix)
	}
	if idx := strings.LastIndex(filename, "."); idx > 0 {
		return filename[:idx]
	}
	return filename
}

// FileNameFor derives the stored filename for an external file being
// added, so "a.md" and "a.prompt.md" both land as "a.prompt.md".
func FileNameFor(base string) string {
	return Stem(base) + Suffix
}

// CanonicalFileName maps a user-supplied name to its stored filename.
// Names are accepted with or without the prompt suffix.
func CanonicalFileName(name string) string {
	if strings.HasSuffix(name, Suffix) {
		return name
	}
	return name + Suffix
}

// DisplayName strips the prompt suffix for listings.
func DisplayName(filename string) string {
	return strings.TrimSuffix(filename, Suffix)
}

// ValidateName rejects names that would escape the prompts directory.
func ValidateName(name string) error {
	if name == "" {
		return errors.Invalid("prompt name is empty")
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Invalid("prompt name '%s' must not contain path separators", name)
	}
	if name == "." || name == ".." {
		return errors.Invalid("prompt name '%s' is not allowed", name)
	}
	return nil
}
