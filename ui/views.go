package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/charmbracelet/lipgloss"
)

// Recommendation renders one recommendation as a card.
func Recommendation(r models.Recommendation) string {
	var b strings.Builder
	b.WriteString(r.Description)
	if len(r.Benefits) > 0 {
		b.WriteString("\n\n" + Bold("Benefits") + "\n")
		b.WriteString(bullets(r.Benefits))
	}
	if len(r.ActionItems) > 0 {
		b.WriteString("\n\n" + Bold("Action items") + "\n")
		b.WriteString(bullets(r.ActionItems))
	}
	return Card{
		Header: r.Title + "  " + Badge(BadgeVariant(r.Priority), r.Priority),
		Body:   b.String(),
		Footer: r.Category,
	}.Render()
}

func Recommendations(recs []models.Recommendation) string {
	if len(recs) == 0 {
		return Muted("No recommendations.")
	}
	cards := make([]string, 0, len(recs))
	for _, r := range recs {
		cards = append(cards, Recommendation(r))
	}
	return strings.Join(cards, "\n")
}

func Prevention(p models.PreventionData) string {
	var b strings.Builder
	b.WriteString(SectionTitle("Primary prevention") + "\n")
	if len(p.Primary) == 0 {
		b.WriteString(Muted("None.") + "\n")
	}
	for _, item := range p.Primary {
		body := item.Description
		if item.RecommendedAge != "" || item.Frequency != "" {
			body += "\n" + Muted(strings.TrimSpace(item.RecommendedAge+" · "+item.Frequency))
		}
		extras := append(append(append([]string{}, item.Tests...), item.Vaccines...), item.Components...)
		if len(extras) > 0 {
			body += "\n" + bullets(extras)
		}
		b.WriteString(Card{Header: item.Title, Body: body, Footer: item.Effectiveness}.Render() + "\n")
	}

	b.WriteString(SectionTitle("Secondary prevention") + "\n")
	if len(p.Secondary) == 0 {
		b.WriteString(Muted("None.") + "\n")
	}
	for _, item := range p.Secondary {
		body := item.Description
		if len(item.Interventions) > 0 {
			body += "\n" + bullets(item.Interventions)
		}
		b.WriteString(Card{Header: item.Title, Body: body, Footer: item.TargetCondition}.Render() + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Longevity renders the projection; nil renders a placeholder.
func Longevity(l *models.LongevityProfile) string {
	if l == nil {
		return Muted("No longevity data.")
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Current age %d · projected lifespan %d · health score %d\n",
		l.CurrentAge, l.ProjectedLifespan, l.HealthScore)

	if len(l.RiskFactors) > 0 {
		b.WriteString("\n" + SectionTitle("Risk factors") + "\n")
		for _, f := range l.RiskFactors {
			fmt.Fprintf(&b, "  %s %s %s\n", signed(f.Impact), f.Factor, Badge(severityBadge(f.Severity), f.Severity))
		}
	}
	if len(l.ProtectiveFactors) > 0 {
		b.WriteString("\n" + SectionTitle("Protective factors") + "\n")
		for _, f := range l.ProtectiveFactors {
			fmt.Fprintf(&b, "  %s %s\n", signed(f.Impact), f.Factor)
		}
	}
	if len(l.Recommendations) > 0 {
		b.WriteString("\n" + SectionTitle("Actions") + "\n")
		for _, a := range l.Recommendations {
			fmt.Fprintf(&b, "  %s (%s, %s)\n", a.Action, a.PotentialGain, a.Difficulty)
		}
	}
	if len(l.Milestones) > 0 {
		b.WriteString("\n" + SectionTitle("Milestones") + "\n")
		for _, m := range l.Milestones {
			fmt.Fprintf(&b, "  %3d  %s\n", m.Age, m.Milestone)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Dashboard renders the stat row shown above the appointment list.
func Dashboard(s models.DashboardStats) string {
	next := "-"
	if s.DaysUntilNext != nil {
		next = strconv.Itoa(*s.DaysUntilNext)
	}
	stat := func(label, value string) string {
		return Card{Header: label, Body: lipgloss.NewStyle().Bold(true).Foreground(Brand600).Render(value), Width: 24}.Render()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Days until next", next),
		stat("Total scheduled", strconv.Itoa(s.TotalScheduled)),
		stat("Pending confirmations", strconv.Itoa(s.PendingConfirmations)),
	)
}

// Appointments renders an appointment list, one card each.
func Appointments(appts []models.Appointment) string {
	if len(appts) == 0 {
		return Muted("No appointments.")
	}
	cards := make([]string, 0, len(appts))
	for _, a := range appts {
		cards = append(cards, Appointment(a))
	}
	return strings.Join(cards, "\n")
}

func Appointment(a models.Appointment) string {
	badge := BadgeConfirmed
	if a.ConfirmationStatus == models.ConfirmationPending {
		badge = BadgePending
	}
	body := strings.Join([]string{
		a.Doctor + " · " + a.Specialty,
		a.Date + " " + a.Time,
		a.Location,
	}, "\n")
	return Card{
		Header: a.Name + "  " + Badge(badge, a.ConfirmationStatus),
		Body:   body,
		Footer: a.Status + " · " + a.Phone,
	}.Render()
}

// Profile renders the summary shown after onboarding completes.
func Profile(p models.UserProfile) string {
	age := "-"
	if p.Age != nil {
		age = strconv.Itoa(*p.Age)
	}
	conditions := "None"
	if names := p.ConditionNames(); len(names) > 0 {
		conditions = strings.Join(names, ", ")
	}
	rows := [][2]string{
		{"Name", p.Name},
		{"Email", p.Email},
		{"Date of Birth", p.DateOfBirth},
		{"Age", age},
		{"Sex", p.Sex},
		{"Health Conditions", conditions},
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, Bold(r[0]+":")+" "+r[1])
	}
	return strings.Join(lines, "\n")
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, "• "+it)
	}
	return strings.Join(lines, "\n")
}

func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func severityBadge(s string) BadgeVariant {
	switch s {
	case "high":
		return BadgeHigh
	case "moderate", "medium":
		return BadgeMedium
	case "low":
		return BadgeLow
	}
	return BadgeDefault
}
