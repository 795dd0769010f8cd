package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonOutline   ButtonVariant = "outline"
	ButtonDisabled  ButtonVariant = "disabled"
)

type ButtonSize string

const (
	SizeSmall  ButtonSize = "sm"
	SizeMedium ButtonSize = "md"
	SizeLarge  ButtonSize = "lg"
)

// Button is a rendered label styled by variant and size. Disabled overrides
// the variant. Focused adds an underline, the terminal analogue of a focus
// ring.
type Button struct {
	Label    string
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Focused  bool
}

func (b Button) Render() string {
	variant := b.Variant
	if b.Disabled {
		variant = ButtonDisabled
	}

	style := lipgloss.NewStyle()
	switch variant {
	case ButtonSecondary:
		style = style.Background(Gray200).Foreground(Gray800)
	case ButtonOutline:
		style = style.Foreground(Brand500).Border(lipgloss.NormalBorder()).BorderForeground(Brand500)
	case ButtonDisabled:
		style = style.Background(Gray300).Foreground(Gray500)
	default:
		style = style.Background(Brand500).Foreground(White).Bold(true)
	}

	switch b.Size {
	case SizeSmall:
		style = style.Padding(0, 1)
	case SizeLarge:
		style = style.Padding(1, 4)
	default:
		style = style.Padding(0, 2)
	}

	if b.Focused && variant != ButtonDisabled {
		style = style.Underline(true)
	}
	return style.Render(b.Label)
}

// Card is a bordered box with optional header and footer sections.
// Width zero sizes the card to its content.
type Card struct {
	Header string
	Body   string
	Footer string
	Width  int
}

func (c Card) Render() string {
	parts := make([]string, 0, 5)
	if c.Header != "" {
		parts = append(parts, boldStyle.Render(c.Header), "")
	}
	parts = append(parts, c.Body)
	if c.Footer != "" {
		parts = append(parts, "", mutedStyle.Render(c.Footer))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Brand200).
		Padding(0, 1)
	if c.Width > 0 {
		style = style.Width(c.Width)
	}
	return style.Render(strings.Join(parts, "\n"))
}

type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeConfirmed BadgeVariant = "confirmed"
	BadgePending   BadgeVariant = "pending"
	BadgeHigh      BadgeVariant = "high"
	BadgeMedium    BadgeVariant = "medium"
	BadgeLow       BadgeVariant = "low"
	BadgeSuccess   BadgeVariant = "success"
	BadgeWarning   BadgeVariant = "warning"
)

// Badge renders a short pill. Unknown variants use the default look.
func Badge(variant BadgeVariant, text string) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch variant {
	case BadgeConfirmed, BadgeSuccess:
		style = style.Background(Brand500).Foreground(White)
	case BadgePending:
		style = style.Background(Brand200).Foreground(Brand800)
	case BadgeHigh:
		style = style.Background(Destructive).Foreground(White)
	case BadgeMedium, BadgeWarning:
		style = style.Background(Warning).Foreground(Gray800)
	case BadgeLow:
		style = style.Background(Info).Foreground(White)
	default:
		style = style.Background(Gray200).Foreground(Gray800)
	}
	return style.Render(text)
}
