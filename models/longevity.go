package models

// LongevityProfile is the projected-lifespan view for the current user.
type LongevityProfile struct {
	CurrentAge        int                `json:"currentAge"`
	ProjectedLifespan int                `json:"projectedLifespan"`
	HealthScore       int                `json:"healthScore"`
	RiskFactors       []RiskFactor       `json:"riskFactors"`
	ProtectiveFactors []ProtectiveFactor `json:"protectiveFactors"`
	Recommendations   []LongevityAction  `json:"recommendations"`
	Milestones        []Milestone        `json:"milestones"`
}

// RiskFactor.Impact is in years and negative.
type RiskFactor struct {
	ID          int    `json:"id"`
	Factor      string `json:"factor"`
	Impact      int    `json:"impact"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type ProtectiveFactor struct {
	ID          int    `json:"id"`
	Factor      string `json:"factor"`
	Impact      int    `json:"impact"`
	Description string `json:"description"`
}

type LongevityAction struct {
	ID            int    `json:"id"`
	Action        string `json:"action"`
	PotentialGain string `json:"potentialGain"`
	Difficulty    string `json:"difficulty"`
	Description   string `json:"description"`
}

type Milestone struct {
	Age         int    `json:"age"`
	Milestone   string `json:"milestone"`
	Description string `json:"description"`
}
