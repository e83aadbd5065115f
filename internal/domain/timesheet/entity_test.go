package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHoursWorked(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"full workday", "09:00", "17:00", 8.0},
		{"half day", "09:00", "13:00", 4.0},
		{"with minutes", "08:30", "17:15", 8.75},
		{"rounded to two decimals", "09:00", "17:10", 8.17},
		{"overnight shift wraps midnight", "22:00", "06:00", 8.0},
		{"same time is zero", "09:00", "09:00", 0.0},
		{"malformed check-in", "late", "17:00", 0.0},
		{"malformed check-out", "09:00", "", 0.0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, CalculateHoursWorked(c.checkIn, c.checkOut))
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range Statuses {
		assert.True(t, IsValidStatus(status), status)
	}
	assert.False(t, IsValidStatus("worked"))
	assert.False(t, IsValidStatus(""))
}
