package onboarding

// Option is one selectable value with its display label.
type Option struct {
	Value string
	Label string
}

var (
	SexOptions = []Option{
		{"male", "Male"},
		{"female", "Female"},
		{"other", "Other"},
		{"prefer-not-to-say", "Prefer not to say"},
	}
	SmokingOptions = []Option{
		{"never", "Never smoked"},
		{"former", "Former smoker"},
		{"current", "Current smoker"},
	}
	AlcoholOptions = []Option{
		{"none", "None"},
		{"occasional", "Occasional"},
		{"moderate", "Moderate"},
		{"heavy", "Heavy"},
	}
	ExerciseOptions = []Option{
		{"none", "None"},
		{"1-2 times per week", "1-2 times per week"},
		{"2-3 times per week", "2-3 times per week"},
		{"3-5 times per week", "3-5 times per week"},
		{"daily", "Daily"},
	}
	DietOptions = []Option{
		{"mixed", "Mixed"},
		{"vegetarian", "Vegetarian"},
		{"vegan", "Vegan"},
		{"mediterranean", "Mediterranean"},
		{"keto", "Keto"},
		{"other", "Other"},
	}
)

// Label returns the display label for value, or value itself.
func Label(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
