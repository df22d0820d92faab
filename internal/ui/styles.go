package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, UI functions produce plain text without colors or decorations.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

// ═══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Primary palette
	Gold  = lipgloss.Color("#F4D03F") // Headings and highlights
	Amber = lipgloss.Color("#E59866") // Secondary headings
	Blue  = lipgloss.Color("#5DADE2") // Informational text
	Cyan  = lipgloss.Color("#76D7C4") // Hints and usage strings
	Green = lipgloss.Color("#58D68D") // Success
	Red   = lipgloss.Color("#EC7063") // Errors
	Coral = lipgloss.Color("#DC7633") // Warnings

	// Neutrals
	White    = lipgloss.Color("#FDFEFE")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
)

// ═══════════════════════════════════════════════════════════════════════════════
// TEXT STYLES
// ═══════════════════════════════════════════════════════════════════════════════

var (
	// Title for page-level headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	// Subtitle for secondary headings
	Subtitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(Amber)

	// Success messages
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Error messages
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// Warning messages
	Warning = lipgloss.NewStyle().
		Foreground(Coral)

	// Info messages
	Info = lipgloss.NewStyle().
		Foreground(Blue)

	// Muted/secondary text
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Dim - even more subtle
	Dim = lipgloss.NewStyle().
		Foreground(DarkGray)

	// Highlight for important items
	Highlight = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	// Code for commands and slash usages
	Code = lipgloss.NewStyle().
		Foreground(Cyan)
)

// ═══════════════════════════════════════════════════════════════════════════════
// BADGES
// ═══════════════════════════════════════════════════════════════════════════════

var baseBadge = lipgloss.NewStyle().
	Padding(0, 1).
	Bold(true)

// ModeBadge returns a badge for a prompt's frontmatter mode.
func ModeBadge(mode string) string {
	if mode == "" {
		return ""
	}
	if !IsTTY {
		return fmt.Sprintf("[%s]", strings.ToUpper(mode))
	}

	var bg lipgloss.Color
	switch mode {
	case "agent":
		bg = Blue
	case "ask":
		bg = Green
	case "edit":
		bg = Coral
	default:
		bg = DarkGray
	}
	return baseBadge.Background(bg).Foreground(White).Render(strings.ToUpper(mode))
}

// ═══════════════════════════════════════════════════════════════════════════════
// DECORATIVE ELEMENTS
// ═══════════════════════════════════════════════════════════════════════════════

// Divider returns a horizontal divider
func Divider(width int) string {
	return lipgloss.NewStyle().
		Foreground(DarkGray).
		Render(strings.Repeat("─", width))
}

// SectionHeader creates a decorated section header
func SectionHeader(title string) string {
	// Plain output for non-TTY environments
	if !IsTTY {
		return fmt.Sprintf("=== %s ===", title)
	}

	// Use terminal width, capped at 80
	width := TerminalWidth()
	if width > 80 {
		width = 80
	}

	titleStyled := lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true).
		Render(title)

	titleLen := lipgloss.Width(title)
	padLeft := (width - titleLen - 6) / 2
	padRight := width - titleLen - 6 - padLeft

	left := lipgloss.NewStyle().Foreground(DarkGray).Render(strings.Repeat("─", padLeft) + "┤ ")
	right := lipgloss.NewStyle().Foreground(DarkGray).Render(" ├" + strings.Repeat("─", padRight))

	return left + titleStyled + right
}

// ═══════════════════════════════════════════════════════════════════════════════
// STATUS LINE COMPONENTS
// ═══════════════════════════════════════════════════════════════════════════════

// StatusLine creates a status line with icon and message
func StatusLine(icon, message string, color lipgloss.Color) string {
	if !IsTTY {
		return fmt.Sprintf("  %s %s", icon, message)
	}
	iconStyled := lipgloss.NewStyle().Foreground(color).Render(icon)
	msgStyled := lipgloss.NewStyle().Foreground(color).Render(message)
	return fmt.Sprintf("  %s %s", iconStyled, msgStyled)
}

// SuccessLine creates a success status line
func SuccessLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  OK: %s", message)
	}
	return StatusLine("✓", message, Green)
}

// ErrorLine creates an error status line
func ErrorLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  ERROR: %s", message)
	}
	return StatusLine("✗", message, Red)
}

// WarningLine creates a warning status line
func WarningLine(message string) string {
	if !IsTTY {
		return fmt.Sprintf("  WARN: %s", message)
	}
	return StatusLine("!", message, Coral)
}

// ═══════════════════════════════════════════════════════════════════════════════
// EMPTY STATES
// ═══════════════════════════════════════════════════════════════════════════════

// NoPrompts returns a friendly empty state for the listing
func NoPrompts(root string) string {
	if !IsTTY {
		return fmt.Sprintf("no prompts in %s\nuse `pmpts add <file>` to bring one in", root)
	}

	message := lipgloss.NewStyle().Foreground(Gray).Render("No prompts in " + root)
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("pmpts add <file>")
	return fmt.Sprintf("  %s\n  Use %s to bring one in.", message, hint)
}

// NoMatches returns a friendly no-results state for search
func NoMatches(query string) string {
	if !IsTTY {
		return fmt.Sprintf("no prompts match \"%s\"", query)
	}

	message := lipgloss.NewStyle().Foreground(Gray).Render(fmt.Sprintf("No prompts match \"%s\"", query))
	hint := lipgloss.NewStyle().Foreground(Cyan).Render("Try broader search terms")
	return fmt.Sprintf("  %s\n  %s", message, hint)
}

// ═══════════════════════════════════════════════════════════════════════════════
// HELPER FUNCTIONS
// ═══════════════════════════════════════════════════════════════════════════════

// Truncate truncates text to max length with ellipsis
func Truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max-3] + "..."
}

// WrapText wraps text to fit within maxWidth, returning multiple lines.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= maxWidth {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// TerminalWidth returns the current terminal width, defaulting to 80 if unknown
func TerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
