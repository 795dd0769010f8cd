package main

import (
	"context"
	"testing"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/onboarding"
	"github.com/Aram-az/ESSDev-Lifeyears/services"
	"github.com/Aram-az/ESSDev-Lifeyears/storage"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, time.November, 14, 12, 0, 0, 0, time.UTC)
}

func send(t *testing.T, m *onboardModel, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		require.Same(t, m, next)
	}
	return cmd
}

func key(k tea.KeyType) tea.Msg { return tea.KeyMsg{Type: k} }

func typed(s string) tea.Msg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func newTestModel(t *testing.T) (*onboardModel, *services.SubmissionStore) {
	t.Helper()
	store := services.NewSubmissionStore(storage.NewMemory(), "onboardingData", nil)
	form := onboarding.NewForm(store, fixedClock)
	return newOnboardModel(context.Background(), form, time.Millisecond), store
}

func TestOnboardBlocksOnEmptyStepOne(t *testing.T) {
	m, _ := newTestModel(t)

	send(t, m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))

	assert.Equal(t, onboarding.StepBasicInfo, m.form.Step())
	assert.Equal(t, 0, m.focus, "focus returns to the first invalid field")
	view := m.View()
	assert.Contains(t, view, "Name is required")
	assert.Contains(t, view, "Date of birth is required")
	assert.Contains(t, view, "Please select your sex")
}

func TestOnboardTypingClearsError(t *testing.T) {
	m, _ := newTestModel(t)
	send(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyEnter))
	require.Contains(t, m.form.Errors(), "name")

	send(t, m, typed("A"))
	assert.NotContains(t, m.form.Errors(), "name")
	assert.Contains(t, m.form.Errors(), "sex")
}

func TestOnboardFullFlow(t *testing.T) {
	m, store := newTestModel(t)

	// Step 1: name, date of birth, email, phone, sex.
	send(t, m,
		typed("Ada Lovelace"), key(tea.KeyTab),
		typed("1990-12-10"), key(tea.KeyTab),
		typed("not-an-email"), key(tea.KeyTab),
		key(tea.KeyTab),
		key(tea.KeyRight), key(tea.KeyRight),
	)
	v, err := m.form.Field("sex")
	require.NoError(t, err)
	assert.Equal(t, "female", v)

	send(t, m, key(tea.KeyEnter))
	require.Equal(t, onboarding.StepHealth, m.form.Step())
	assert.Equal(t, "Please enter a valid email address", m.form.Warnings()["email"])

	// Step 2: two conditions, drop the second, pick a smoking status.
	send(t, m,
		typed("Asthma"), key(tea.KeyEnter),
		typed("Typo"), key(tea.KeyEnter),
		key(tea.KeyCtrlX),
	)
	assert.Equal(t, []string{"Asthma"}, m.form.Profile().ConditionNames())
	assert.Contains(t, m.View(), "Asthma")

	send(t, m, key(tea.KeyEnter), key(tea.KeyRight))
	assert.Equal(t, "never", m.form.Profile().Lifestyle.SmokingStatus)

	send(t, m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, onboarding.StepReview, m.form.Step())
	assert.Contains(t, m.View(), "Never smoked")

	// Back to health and forward again keeps the values.
	send(t, m, key(tea.KeyEsc))
	require.Equal(t, onboarding.StepHealth, m.form.Step())
	send(t, m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyEnter))
	require.Equal(t, onboarding.StepReview, m.form.Step())

	cmd := send(t, m, key(tea.KeyEnter))
	require.Equal(t, onboarding.StepComplete, m.form.Step())
	require.NotNil(t, cmd)
	view := m.View()
	assert.Contains(t, view, "Setup Complete!")
	assert.Contains(t, view, "Ada Lovelace")
	assert.Contains(t, view, "33")

	list, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ada Lovelace", list[0].Name)
	assert.Equal(t, fixedClock().UnixMilli(), list[0].ID)

	send(t, m, exitMsg{})
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestOnboardCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := send(t, m, key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
}
