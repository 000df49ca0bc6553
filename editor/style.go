package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Chip       lipgloss.Style
	ChipActive lipgloss.Style // chip right of an inline draft

	Text        lipgloss.Style
	Selection   lipgloss.Style
	Cursor      lipgloss.Style
	Placeholder lipgloss.Style

	Suggestion         lipgloss.Style
	SuggestionSelected lipgloss.Style
}

func DefaultStyle() Style {
	chip := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238"))
	return Style{
		Chip:               chip,
		ChipActive:         chip.Background(lipgloss.Color("62")),
		Text:               lipgloss.NewStyle(),
		Selection:          lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:             lipgloss.NewStyle().Reverse(true),
		Placeholder:        lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Suggestion:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SuggestionSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
	}
}
