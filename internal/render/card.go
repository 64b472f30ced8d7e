// Package render draws journal entries for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rcliao/journal-archive/internal/model"
	"github.com/rcliao/journal-archive/internal/mood"
)

// Palette "Blue Moon" from https://gogh-co.github.io/Gogh/
const (
	colorGray  = "#353b52"
	colorMuted = "#8a8fa8"
	colorWhite = "#ffffff"
	colorBlue  = "#89ddff"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorGray)).
			Padding(0, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color(colorWhite))
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))
	bodyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWhite))
	archivedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorWhite)).
			Background(lipgloss.Color(colorGray)).
			Padding(0, 1)
)

// Badge renders a mood label in its category colour.
func Badge(m string) string {
	c := lipgloss.Color(mood.Classify(m).Color())
	return lipgloss.NewStyle().
		Foreground(c).
		Border(lipgloss.NormalBorder(), false, true).
		BorderForeground(c).
		Padding(0, 1).
		Render(m)
}

// ArchivedBadge is shown next to the mood on archived entries.
func ArchivedBadge() string {
	return archivedStyle.Render("Archived")
}

// Card renders one entry boxed to width columns: title and long date on
// the left, badges on the right, body below.
func Card(e model.Entry, width int) string {
	if width < 20 {
		width = 20
	}
	inner := width - cardStyle.GetHorizontalFrameSize()

	badges := []string{Badge(e.Mood)}
	if e.Archived {
		badges = append(badges, " ", ArchivedBadge())
	}
	badgeBlock := lipgloss.JoinHorizontal(lipgloss.Top, badges...)

	headWidth := inner - lipgloss.Width(badgeBlock) - 1
	if headWidth < 1 {
		headWidth = 1
	}
	head := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Width(headWidth).Render(e.Title),
		dateStyle.Render(e.Date.Long()),
	)
	header := lipgloss.JoinHorizontal(lipgloss.Top, head, " ", badgeBlock)

	body := bodyStyle.Width(inner).Render(e.Body)

	return cardStyle.Width(width - cardStyle.GetHorizontalBorderSize()).
		Render(strings.Join([]string{header, "", body}, "\n"))
}
