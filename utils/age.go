package utils

import "time"

// CalculateAge returns whole calendar years between birthday and today.
// The year difference drops by one until this year's birthday is reached.
func CalculateAge(birthday, today time.Time) int {
	age := today.Year() - birthday.Year()
	if today.Month() < birthday.Month() ||
		(today.Month() == birthday.Month() && today.Day() < birthday.Day()) {
		age--
	}
	return age
}

// AgeFromDate parses a YYYY-MM-DD date of birth and derives the age.
// ok is false for an empty or unparseable date.
func AgeFromDate(dateOfBirth string, today time.Time) (age int, ok bool) {
	if dateOfBirth == "" {
		return 0, false
	}
	birthday, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0, false
	}
	return CalculateAge(birthday, today), true
}
