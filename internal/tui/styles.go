package tui

import "github.com/charmbracelet/lipgloss"

const cellWidth = 8

// styles holds the lipgloss styles of the dashboard, derived from the
// account's theme color.
type styles struct {
	Header   lipgloss.Style
	Weekday  lipgloss.Style
	Day      lipgloss.Style
	DimDay   lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Holiday  lipgloss.Style
	Sunday   lipgloss.Style
	Saturday lipgloss.Style
	Sidebar  lipgloss.Style
	Label    lipgloss.Style
	Status   lipgloss.Style
	ErrText  lipgloss.Style
}

func newStyles(themeColor string) styles {
	accent := lipgloss.Color(themeColor)
	cell := lipgloss.NewStyle().Width(cellWidth).Height(2).Padding(0, 1)

	return styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		Weekday:  lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Faint(true),
		Day:      cell,
		DimDay:   cell.Faint(true),
		Today:    cell.Bold(true).Underline(true),
		Selected: cell.Reverse(true),
		Holiday:  lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Sunday:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Saturday: lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			Width(34),
		Label:   lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(accent),
		ErrText: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// progressBar renders a fixed-width bar filled to fraction.
func progressBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		if i < filled {
			bar = append(bar, '█')
		} else {
			bar = append(bar, '░')
		}
	}
	return string(bar)
}
