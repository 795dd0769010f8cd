package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/onboarding"
	"github.com/Aram-az/ESSDev-Lifeyears/services"
	"github.com/Aram-az/ESSDev-Lifeyears/ui"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var onboardExitDelay time.Duration

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Fill in the onboarding form and save it locally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		return withSubmissions(ctx, cfg, logger, func(s *services.SubmissionStore) error {
			m := newOnboardModel(ctx, onboarding.NewForm(s, time.Now), onboardExitDelay)
			if _, err := tea.NewProgram(m).Run(); err != nil {
				return errors.Wrap(err, "onboarding form")
			}
			return nil
		})
	},
}

func init() {
	onboardCmd.Flags().DurationVar(&onboardExitDelay, "exit-delay", 3*time.Second, "how long the summary stays up after saving")
}

// conditionField is the scratch input for adding a health condition; it is
// not a form field itself.
const conditionField = "currentCondition"

type exitMsg struct{}

type formField struct {
	name    string
	label   string
	input   textinput.Model
	options []onboarding.Option
	choice  int
}

func textField(name, label, placeholder string) *formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	return &formField{name: name, label: label, input: in, choice: -1}
}

func selectField(name, label string, opts []onboarding.Option) *formField {
	return &formField{name: name, label: label, options: opts, choice: -1}
}

func (f *formField) isSelect() bool { return f.options != nil }

func (f *formField) value() string {
	if f.isSelect() {
		if f.choice < 0 {
			return ""
		}
		return f.options[f.choice].Value
	}
	return f.input.Value()
}

func (f *formField) cycle(delta int) {
	n := len(f.options)
	f.choice = ((f.choice+delta)%n + n) % n
}

// onboardModel drives an onboarding.Form from the keyboard. Tab and arrows
// move between fields, left/right change a selection, enter moves on (or
// adds a typed condition), esc goes back a step.
type onboardModel struct {
	ctx       context.Context
	form      *onboarding.Form
	fields    map[onboarding.Step][]*formField
	focus     int
	status    string
	exitDelay time.Duration
	quitting  bool
}

func newOnboardModel(ctx context.Context, form *onboarding.Form, exitDelay time.Duration) *onboardModel {
	m := &onboardModel{
		ctx:       ctx,
		form:      form,
		exitDelay: exitDelay,
		fields: map[onboarding.Step][]*formField{
			onboarding.StepBasicInfo: {
				textField("name", "Full Name *", "Jane Doe"),
				textField("dateOfBirth", "Date of Birth *", "YYYY-MM-DD"),
				textField("email", "Email", "jane@example.com"),
				textField("phoneNumber", "Phone Number", "(555) 123-4567"),
				selectField("sex", "Sex *", onboarding.SexOptions),
			},
			onboarding.StepHealth: {
				textField(conditionField, "Existing Health Conditions", "type and press enter to add"),
				selectField("lifestyle.smokingStatus", "Smoking Status", onboarding.SmokingOptions),
				selectField("lifestyle.alcoholConsumption", "Alcohol Consumption", onboarding.AlcoholOptions),
				selectField("lifestyle.exerciseFrequency", "Exercise Frequency", onboarding.ExerciseOptions),
				selectField("lifestyle.dietType", "Diet Type", onboarding.DietOptions),
			},
		},
	}
	m.setFocus(0)
	return m
}

func (m *onboardModel) Init() tea.Cmd { return textinput.Blink }

func (m *onboardModel) current() []*formField { return m.fields[m.form.Step()] }

func (m *onboardModel) setFocus(i int) {
	fields := m.current()
	if len(fields) == 0 {
		m.focus = 0
		return
	}
	m.focus = (i%len(fields) + len(fields)) % len(fields)
	for j, f := range fields {
		if f.isSelect() {
			continue
		}
		if j == m.focus {
			f.input.Focus()
		} else {
			f.input.Blur()
		}
	}
}

func (m *onboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exitMsg:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		switch m.form.Step() {
		case onboarding.StepComplete:
			m.quitting = true
			return m, tea.Quit
		case onboarding.StepReview:
			switch msg.Type {
			case tea.KeyEnter:
				return m.submit()
			case tea.KeyEsc:
				m.form.Back()
				m.setFocus(0)
			}
			return m, nil
		}
		return m.updateFields(msg)
	}
	return m, nil
}

func (m *onboardModel) updateFields(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := m.current()
	f := fields[m.focus]

	switch msg.Type {
	case tea.KeyTab, tea.KeyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	case tea.KeyEsc:
		m.form.Back()
		m.setFocus(0)
		return m, nil
	case tea.KeyCtrlX:
		if n := len(m.form.Profile().ExistingHealthConditions); n > 0 {
			m.form.RemoveCondition(n - 1)
		}
		return m, nil
	case tea.KeyEnter:
		if f.name == conditionField && m.form.AddCondition(f.input.Value()) {
			f.input.SetValue("")
			return m, nil
		}
		if m.focus < len(fields)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		m.advance()
		return m, nil
	case tea.KeyLeft, tea.KeyRight:
		if f.isSelect() {
			if msg.Type == tea.KeyLeft {
				f.cycle(-1)
			} else {
				f.cycle(1)
			}
			_ = m.form.SetField(f.name, f.value())
			return m, nil
		}
	}

	if f.isSelect() {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.name != conditionField {
		_ = m.form.SetField(f.name, f.input.Value())
	}
	return m, cmd
}

// advance tries the form's Next; on validation failure focus jumps to the
// first field with an error.
func (m *onboardModel) advance() {
	err := m.form.Next()
	var fe onboarding.FieldErrors
	if errors.As(err, &fe) {
		for i, f := range m.current() {
			if _, bad := fe[f.name]; bad {
				m.setFocus(i)
				return
			}
		}
		return
	}
	m.setFocus(0)
}

func (m *onboardModel) submit() (tea.Model, tea.Cmd) {
	if _, err := m.form.Submit(m.ctx); err != nil {
		m.status = err.Error()
		return m, nil
	}
	m.status = ""
	return m, tea.Tick(m.exitDelay, func(time.Time) tea.Msg { return exitMsg{} })
}

func (m *onboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	step := m.form.Step()

	if step == onboarding.StepComplete {
		sub, _ := m.form.Submitted()
		b.WriteString(ui.PageTitle("Setup Complete!") + "\n")
		b.WriteString("Your onboarding information has been saved successfully.\n\n")
		b.WriteString(ui.Card{Header: "Summary of Your Information", Body: ui.Profile(sub.UserProfile)}.Render() + "\n")
		b.WriteString(ui.Muted(fmt.Sprintf("Closing in %s, or press any key.", m.exitDelay)) + "\n")
		return b.String()
	}

	b.WriteString(ui.PageTitle("Welcome to Lifeyears") + "\n")
	b.WriteString(ui.Muted(fmt.Sprintf("Step %d of 3: %s", int(step), step)) + "\n\n")

	if step == onboarding.StepReview {
		b.WriteString(m.reviewView())
	} else {
		b.WriteString(m.fieldsView())
	}

	if m.status != "" {
		b.WriteString("\n" + ui.ErrorLine(m.status) + "\n")
	}

	back := ui.Button{Label: "Back", Variant: ui.ButtonOutline, Size: ui.SizeSmall, Disabled: step == onboarding.StepBasicInfo}
	next := ui.Button{Label: "Next", Size: ui.SizeSmall}
	if step == onboarding.StepReview {
		next.Label = "Complete Setup"
	}
	b.WriteString("\n" + back.Render() + "  " + next.Render() + "\n")
	b.WriteString(ui.Muted("tab/↑↓ move · ←→ choose · enter next · esc back · ctrl+c quit") + "\n")
	return b.String()
}

func (m *onboardModel) fieldsView() string {
	var b strings.Builder
	errs := m.form.Errors()
	warnings := m.form.Warnings()

	for i, f := range m.current() {
		label := f.label
		if i == m.focus {
			label = ui.Bold("› " + label)
		} else {
			label = "  " + label
		}
		b.WriteString(label + "\n    ")

		if f.isSelect() {
			shown := "Select..."
			if f.choice >= 0 {
				shown = f.options[f.choice].Label
			}
			b.WriteString("< " + shown + " >")
		} else {
			b.WriteString(f.input.View())
		}
		b.WriteString("\n")

		if f.name == conditionField {
			for _, name := range m.form.Profile().ConditionNames() {
				b.WriteString("    " + ui.Badge(ui.BadgeDefault, name) + "\n")
			}
		}
		if msg := errs[f.name]; msg != "" {
			b.WriteString("    " + ui.ErrorLine(msg) + "\n")
		}
		if msg := warnings[f.name]; msg != "" {
			b.WriteString("    " + ui.WarningLine(msg) + "\n")
		}
	}
	return b.String()
}

func (m *onboardModel) reviewView() string {
	p := m.form.Profile()
	l := p.Lifestyle
	lifestyle := strings.Join([]string{
		ui.Bold("Smoking:") + " " + onboarding.Label(onboarding.SmokingOptions, l.SmokingStatus),
		ui.Bold("Alcohol:") + " " + onboarding.Label(onboarding.AlcoholOptions, l.AlcoholConsumption),
		ui.Bold("Exercise:") + " " + onboarding.Label(onboarding.ExerciseOptions, l.ExerciseFrequency),
		ui.Bold("Diet:") + " " + onboarding.Label(onboarding.DietOptions, l.DietType),
	}, "\n")
	return ui.Card{Header: "Review Your Information", Body: ui.Profile(p) + "\n\n" + lifestyle}.Render() + "\n"
}
