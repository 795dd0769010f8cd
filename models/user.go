package models

import (
	"bytes"
	"encoding/json"
)

const DateLayout = "2006-01-02"

type Lifestyle struct {
	SmokingStatus      string `json:"smokingStatus"`
	AlcoholConsumption string `json:"alcoholConsumption"`
	ExerciseFrequency  string `json:"exerciseFrequency"`
	DietType           string `json:"dietType"`
}

// HealthCondition is either free text ("Hypertension") or a structured
// record. Free text round-trips as a bare JSON string.
type HealthCondition struct {
	Name  string `json:"name"`
	Since string `json:"since,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (h HealthCondition) MarshalJSON() ([]byte, error) {
	if h.Since == "" && h.Notes == "" {
		return json.Marshal(h.Name)
	}
	type plain HealthCondition
	return json.Marshal(plain(h))
}

func (h *HealthCondition) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		*h = HealthCondition{}
		return json.Unmarshal(data, &h.Name)
	}
	type plain HealthCondition
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*h = HealthCondition(p)
	return nil
}

// UserProfile is the shape shared by the mock user fixture and onboarding.
type UserProfile struct {
	Name                     string            `json:"name"`
	Email                    string            `json:"email"`
	PhoneNumber              string            `json:"phoneNumber"`
	DateOfBirth              string            `json:"dateOfBirth"` // YYYY-MM-DD
	Sex                      string            `json:"sex"`
	ExistingHealthConditions []HealthCondition `json:"existingHealthConditions"`
	FamilyHistory            []string          `json:"familyHistory"`
	Lifestyle                Lifestyle         `json:"lifestyle"`
	Age                      *int              `json:"age"`
}

// ConditionNames flattens the conditions to their display names.
func (u UserProfile) ConditionNames() []string {
	names := make([]string, 0, len(u.ExistingHealthConditions))
	for _, c := range u.ExistingHealthConditions {
		names = append(names, c.Name)
	}
	return names
}

// OnboardingSubmission is one completed onboarding form. ID is the
// wall-clock time of submission in milliseconds.
type OnboardingSubmission struct {
	UserProfile
	ID          int64  `json:"id"`
	SubmittedAt string `json:"submittedAt"`
}
