package timesheet

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Timesheet day statuses, worked / on leave / absent / half day / public holiday
var Statuses = []string{"Çalıştı", "İzinli", "Devamsız", "Yarım Gün", "Resmi Tatil"}

const DefaultStatus = "Çalıştı"

func IsValidStatus(s string) bool {
	for _, known := range Statuses {
		if known == s {
			return true
		}
	}
	return false
}

type Timesheet struct {
	ID             string
	OwnerAccountID string
	EmployeeID     string
	Date           time.Time
	Status         string
	CheckInTime    *string
	CheckOutTime   *string
	HoursWorked    float64
	OvertimeHours  float64
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CalculateHoursWorked derives the worked hours from "HH:MM" check times,
// rounded to two decimals. A check-out earlier than the check-in is treated
// as an overnight shift and wraps past midnight.
func CalculateHoursWorked(checkInTime, checkOutTime string) float64 {
	checkInMinutes, ok := parseClockMinutes(checkInTime)
	if !ok {
		return 0
	}
	checkOutMinutes, ok := parseClockMinutes(checkOutTime)
	if !ok {
		return 0
	}

	totalMinutes := checkOutMinutes - checkInMinutes
	if totalMinutes < 0 {
		totalMinutes += 24 * 60
	}

	return math.Round(float64(totalMinutes)/60*100) / 100
}

func parseClockMinutes(clock string) (int, bool) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}
