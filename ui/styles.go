// Package ui renders Lifeyears data for the terminal. Every function here is
// stateless: values in, string out.
package ui

import "github.com/charmbracelet/lipgloss"

// Brand palette.
var (
	Brand50  = lipgloss.Color("#eef7f2")
	Brand200 = lipgloss.Color("#b9dfc9")
	Brand500 = lipgloss.Color("#2f9e6a")
	Brand600 = lipgloss.Color("#25845a")
	Brand800 = lipgloss.Color("#17513a")

	Gray200 = lipgloss.Color("#e5e7eb")
	Gray300 = lipgloss.Color("#d1d5db")
	Gray500 = lipgloss.Color("#6b7280")
	Gray800 = lipgloss.Color("#1f2937")
	White   = lipgloss.Color("#ffffff")

	Destructive = lipgloss.Color("#e53935")
	Warning     = lipgloss.Color("#ffc107")
	Info        = lipgloss.Color("#2196f3")
)

var (
	pageTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Brand800).
			MarginBottom(1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Brand600)

	mutedStyle = lipgloss.NewStyle().Foreground(Gray500)
	boldStyle  = lipgloss.NewStyle().Bold(true)

	errorStyle   = lipgloss.NewStyle().Foreground(Destructive)
	warningStyle = lipgloss.NewStyle().Foreground(Warning)
)

func PageTitle(s string) string    { return pageTitleStyle.Render(s) }
func SectionTitle(s string) string { return sectionTitleStyle.Render(s) }
func Muted(s string) string        { return mutedStyle.Render(s) }
func Bold(s string) string         { return boldStyle.Render(s) }

// ErrorLine renders an inline error message; empty input renders nothing.
func ErrorLine(msg string) string {
	if msg == "" {
		return ""
	}
	return errorStyle.Render("✗ " + msg)
}

func WarningLine(msg string) string {
	if msg == "" {
		return ""
	}
	return warningStyle.Render("! " + msg)
}
