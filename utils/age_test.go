package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAge(t *testing.T) {
	today := date(2024, time.November, 14)

	cases := []struct {
		name     string
		birthday time.Time
		want     int
	}{
		{"exactly one year", date(2023, time.November, 14), 1},
		{"birthday later this year", date(1990, time.December, 1), 33},
		{"birthday later this month", date(1990, time.November, 20), 33},
		{"birthday already passed", date(1990, time.March, 3), 34},
		{"birthday is today", date(1990, time.November, 14), 34},
		{"born today", today, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CalculateAge(tc.birthday, today))
		})
	}
}

func TestCalculateAgeLeapDay(t *testing.T) {
	born := date(2000, time.February, 29)
	assert.Equal(t, 22, CalculateAge(born, date(2023, time.February, 28)))
	assert.Equal(t, 23, CalculateAge(born, date(2023, time.March, 1)))
}

func TestAgeFromDate(t *testing.T) {
	today := date(2024, time.November, 14)

	age, ok := AgeFromDate("1989-06-21", today)
	assert.True(t, ok)
	assert.Equal(t, 35, age)

	_, ok = AgeFromDate("", today)
	assert.False(t, ok)

	_, ok = AgeFromDate("21/06/1989", today)
	assert.False(t, ok)
}
