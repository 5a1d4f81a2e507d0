package categorize

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Format selects how categories are rendered
type Format string

const (
	// FormatText prints "Category: <name>" blocks with "- <member>" lines
	FormatText Format = "text"
	// FormatTree prints each category as a box-drawn tree
	FormatTree Format = "tree"
	// FormatJSON prints the categories as a JSON object
	FormatJSON Format = "json"
)

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatTree, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (must be text, tree or json)", s)
	}
}

// ConsoleFormatter renders categories for the terminal
type ConsoleFormatter struct {
	color  bool
	header lipgloss.Style
	count  lipgloss.Style
}

// NewConsoleFormatter creates a new console formatter. Color only affects the
// tree format.
func NewConsoleFormatter(color bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		color:  color,
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		count:  lipgloss.NewStyle().Faint(true),
	}
}

// Format renders categories in the requested format
func (f *ConsoleFormatter) Format(categories *CategoryMap, format Format) (string, error) {
	switch format {
	case FormatText, "":
		return f.FormatText(categories), nil
	case FormatTree:
		return f.FormatTree(categories), nil
	case FormatJSON:
		return f.FormatJSON(categories)
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// FormatText renders a blank line and a "Category:" header per category,
// followed by one "- name" line per member
func (f *ConsoleFormatter) FormatText(categories *CategoryMap) string {
	var sb strings.Builder
	for _, category := range categories.Categories() {
		fmt.Fprintf(&sb, "\nCategory: %s\n", category)
		for _, name := range categories.Members(category) {
			fmt.Fprintf(&sb, "- %s\n", name)
		}
	}
	return sb.String()
}

// FormatTree renders categories as trees
func (f *ConsoleFormatter) FormatTree(categories *CategoryMap) string {
	if categories.Len() == 0 {
		return "No characters found\n"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nSpecies (%d):\n", categories.Len())

	for _, category := range categories.Categories() {
		members := categories.Members(category)

		sb.WriteString("\n")
		sb.WriteString(f.style(f.header, category))
		sb.WriteString(" ")
		sb.WriteString(f.style(f.count, fmt.Sprintf("(%d)", len(members))))
		sb.WriteString("\n")

		for i, name := range members {
			prefix := "├"
			if i == len(members)-1 {
				prefix = "╰"
			}
			fmt.Fprintf(&sb, "%s── %s\n", prefix, name)
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatJSON renders categories as an indented JSON object in category order
func (f *ConsoleFormatter) FormatJSON(categories *CategoryMap) (string, error) {
	data, err := json.MarshalIndent(categories, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode categories: %w", err)
	}
	return string(data) + "\n", nil
}

func (f *ConsoleFormatter) style(s lipgloss.Style, text string) string {
	if !f.color {
		return text
	}
	return s.Render(text)
}
