// Package fixtures embeds the canned JSON served by the mock API.
package fixtures

import "embed"

const (
	Recommendations     = "recommendations.json"
	Prevention          = "prevention.json"
	Longevity           = "longevity.json"
	MockUser            = "mock-user.json"
	MockRecommendations = "mock-recommendations.json"
	Appointments        = "appointments.json"
)

//go:embed *.json
var FS embed.FS
