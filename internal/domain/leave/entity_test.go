package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, time.July, d, 0, 0, 0, 0, time.UTC)
	}

	assert.Equal(t, 1, DaysBetween(day(10), day(10)))
	assert.Equal(t, 2, DaysBetween(day(10), day(11)))
	assert.Equal(t, 7, DaysBetween(day(10), day(16)))

	// Across a month boundary
	assert.Equal(t, 3, DaysBetween(
		time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.August, 2, 0, 0, 0, 0, time.UTC),
	))
}

func TestValidateDates(t *testing.T) {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	assert.NoError(t, ValidateDates(today, today))
	assert.NoError(t, ValidateDates(today.AddDate(0, 0, 1), today.AddDate(0, 0, 5)))

	// Past start
	assert.Error(t, ValidateDates(today.AddDate(0, 0, -1), today))

	// End before start
	assert.Error(t, ValidateDates(today.AddDate(0, 0, 5), today.AddDate(0, 0, 1)))
}

func TestLeave_IsDecided(t *testing.T) {
	assert.False(t, (&Leave{Status: StatusPending}).IsDecided())
	assert.True(t, (&Leave{Status: StatusApproved}).IsDecided())
	assert.True(t, (&Leave{Status: StatusRejected}).IsDecided())
}

func TestIsValidType(t *testing.T) {
	for _, typ := range Types {
		assert.True(t, IsValidType(typ), typ)
	}
	assert.False(t, IsValidType("annual"))
}

func TestIsValidDecision(t *testing.T) {
	assert.True(t, IsValidDecision("approved"))
	assert.True(t, IsValidDecision("rejected"))
	assert.False(t, IsValidDecision("pending"))
	assert.False(t, IsValidDecision(""))
}
