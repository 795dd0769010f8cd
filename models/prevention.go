package models

const (
	PreventionPrimary   = "primary"
	PreventionSecondary = "secondary"
)

// PrimaryPrevention is a program that keeps a condition from occurring.
// Only one of Tests, Vaccines or Components is usually set.
type PrimaryPrevention struct {
	ID             int      `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	RecommendedAge string   `json:"recommendedAge,omitempty"`
	Frequency      string   `json:"frequency,omitempty"`
	Tests          []string `json:"tests,omitempty"`
	Vaccines       []string `json:"vaccines,omitempty"`
	Components     []string `json:"components,omitempty"`
	Effectiveness  string   `json:"effectiveness,omitempty"`
}

// SecondaryPrevention is an early intervention for an existing condition.
type SecondaryPrevention struct {
	ID              int      `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	TargetCondition string   `json:"targetCondition"`
	Interventions   []string `json:"interventions"`
	Outcomes        string   `json:"outcomes"`
}

type PreventionData struct {
	Primary   []PrimaryPrevention   `json:"primary"`
	Secondary []SecondaryPrevention `json:"secondary"`
}
