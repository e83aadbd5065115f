package timesheet

import (
	"context"
	"math"
	"time"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/timesheet"
)

type TimesheetServiceImpl struct {
	timesheet.TimesheetRepository
}

func NewTimesheetService(timesheetRepository timesheet.TimesheetRepository) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		TimesheetRepository: timesheetRepository,
	}
}

// Create implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Create(ctx context.Context, scope account.Scope, req timesheet.CreateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	newTimesheet := timesheet.Timesheet{
		OwnerAccountID: scope.OwnerAccountID,
		EmployeeID:     scope.EmployeeID,
		Date:           date,
		Status:         timesheet.DefaultStatus,
		CheckInTime:    req.CheckInTime,
		CheckOutTime:   req.CheckOutTime,
		Notes:          req.Notes,
	}
	if req.Status != nil {
		newTimesheet.Status = *req.Status
	}
	if req.OvertimeHours != nil {
		newTimesheet.OvertimeHours = *req.OvertimeHours
	}
	if req.CheckInTime != nil && req.CheckOutTime != nil {
		newTimesheet.HoursWorked = timesheet.CalculateHoursWorked(*req.CheckInTime, *req.CheckOutTime)
	}

	created, err := s.TimesheetRepository.Create(ctx, newTimesheet)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(created), nil
}

// Get implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Get(ctx context.Context, scope account.Scope, id string) (timesheet.TimesheetResponse, error) {
	timesheetData, err := s.TimesheetRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(timesheetData), nil
}

// List implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) List(ctx context.Context, scope account.Scope, filter timesheet.Filter) ([]timesheet.TimesheetResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 31
	}

	timesheets, total, err := s.TimesheetRepository.List(ctx, scope.OwnerAccountID, scope.EmployeeID, filter)
	if err != nil {
		return nil, 0, err
	}
	return timesheet.NewTimesheetResponses(timesheets), total, nil
}

// Update implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Update(ctx context.Context, scope account.Scope, id string, req timesheet.UpdateTimesheetRequest) (timesheet.TimesheetResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetResponse{}, err
	}

	var hoursWorked *float64
	if req.CheckInTime != nil || req.CheckOutTime != nil {
		current, err := s.TimesheetRepository.GetByID(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
		if err != nil {
			return timesheet.TimesheetResponse{}, err
		}

		checkIn := current.CheckInTime
		checkOut := current.CheckOutTime
		if req.CheckInTime != nil {
			checkIn = req.CheckInTime
		}
		if req.CheckOutTime != nil {
			checkOut = req.CheckOutTime
		}

		hours := 0.0
		if checkIn != nil && checkOut != nil {
			hours = timesheet.CalculateHoursWorked(*checkIn, *checkOut)
		}
		hoursWorked = &hours
	}

	updated, err := s.TimesheetRepository.Update(ctx, scope.OwnerAccountID, scope.EmployeeID, id, req, hoursWorked)
	if err != nil {
		return timesheet.TimesheetResponse{}, err
	}
	return timesheet.NewTimesheetResponse(updated), nil
}

// Delete implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Delete(ctx context.Context, scope account.Scope, id string) error {
	return s.TimesheetRepository.Delete(ctx, scope.OwnerAccountID, scope.EmployeeID, id)
}

// Statistics implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) Statistics(ctx context.Context, scope account.Scope, year int, month int) (timesheet.Statistics, error) {
	timesheets, err := s.TimesheetRepository.ListByEmployee(ctx, scope.OwnerAccountID, scope.EmployeeID, year, month)
	if err != nil {
		return timesheet.Statistics{}, err
	}

	stats := timesheet.Statistics{
		ByStatus: make(map[string]int),
	}

	for _, t := range timesheets {
		stats.TotalDays++
		stats.ByStatus[t.Status]++
		stats.TotalHoursWorked += t.HoursWorked
		stats.TotalOvertimeHours += t.OvertimeHours

		switch t.Status {
		case "Çalıştı":
			stats.WorkDays++
		case "İzinli":
			stats.LeaveDays++
		case "Devamsız":
			stats.AbsentDays++
		case "Yarım Gün":
			stats.HalfDays++
		case "Resmi Tatil":
			stats.HolidayDays++
		}
	}

	stats.TotalHoursWorked = math.Round(stats.TotalHoursWorked*100) / 100
	stats.TotalOvertimeHours = math.Round(stats.TotalOvertimeHours*100) / 100

	return stats, nil
}
