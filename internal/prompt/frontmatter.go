package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates the leading YAML block from the body.
// ok is false when text carries no complete frontmatter block.
func splitFrontmatter(text string) (yamlPart, body string, ok bool) {
	if !strings.HasPrefix(text, "---") {
		return "", text, false
	}

	rest := strings.TrimPrefix(text[3:], "\n")
	idx := strings.Index(rest, "\n---")
	if idx == -1 {
		return "", text, false
	}

	yamlPart = rest[:idx]
	body = strings.TrimPrefix(rest[idx+4:], "\n")
	return yamlPart, body, true
}

// ParseFrontmatter extracts YAML frontmatter from prompt content.
// Returns the parsed frontmatter map and the body. Content without a
// complete frontmatter block yields an empty map and the full text.
func ParseFrontmatter(content []byte) (map[string]interface{}, string, error) {
	yamlPart, body, ok := splitFrontmatter(string(content))
	fm := make(map[string]interface{})
	if !ok {
		return fm, body, nil
	}

	if err := yaml.Unmarshal([]byte(yamlPart), &fm); err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return fm, body, nil
}

// ParseMetadata extracts the typed frontmatter keys from prompt content.
// Returns the metadata and the body.
func ParseMetadata(content []byte) (*Metadata, string, error) {
	yamlPart, body, ok := splitFrontmatter(string(content))
	meta := &Metadata{}
	if !ok {
		return meta, body, nil
	}

	if err := yaml.Unmarshal([]byte(yamlPart), meta); err != nil {
		return nil, "", fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	return meta, body, nil
}

// ReadFrontmatter parses the frontmatter and body of the file at path.
func ReadFrontmatter(path string) (map[string]interface{}, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return ParseFrontmatter(content)
}

// ReadMetadata parses the typed frontmatter and body of the file at path.
func ReadMetadata(path string) (*Metadata, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return ParseMetadata(content)
}

// FormatValue renders a frontmatter value for tabular display.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, FormatValue(item))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(val)
	}
}
