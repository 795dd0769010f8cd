package models

// Recommendation is a lifestyle recommendation served from the fixture set.
type Recommendation struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Priority    string   `json:"priority"` // "high" | "medium" | "low", not enforced
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	ActionItems []string `json:"actionItems"`
}
