package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sleighride/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSlate:         lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	core.ColorIce:           lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
	core.ColorIndigo:        lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
	core.ColorCrimson:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorGold:          lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorPink:          lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
}

// meterFill maps gauge colors to hex fills for progress bars.
var meterFill = map[core.Color]string{
	core.ColorBrightCyan: "#5FFFFF",
	core.ColorRed:        "#D70000",
	core.ColorGold:       "#FFD700",
	core.ColorGreen:      "#5FD75F",
}

var meterLabel = lipgloss.NewStyle().Bold(true)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// RenderMeters draws one progress bar per gauge on a single line that fits
// within width columns.
func RenderMeters(meters []core.Meter, width int) string {
	if len(meters) == 0 || width <= 0 {
		return ""
	}
	slot := width / len(meters)
	parts := make([]string, 0, len(meters))
	for _, m := range meters {
		label := meterLabel.Render(m.Label) + " "
		barW := slot - lipgloss.Width(label) - 6
		if barW < 4 {
			parts = append(parts, fmt.Sprintf("%s%3.0f%%", label, m.Fraction()*100))
			continue
		}
		fill, ok := meterFill[m.Color]
		if !ok {
			fill = "#AFAFAF"
		}
		bar := progress.New(
			progress.WithSolidFill(fill),
			progress.WithWidth(barW),
			progress.WithoutPercentage(),
		)
		parts = append(parts, fmt.Sprintf("%s%s %3.0f%%", label, bar.ViewAs(m.Fraction()), m.Fraction()*100))
	}
	return strings.Join(parts, " ")
}
