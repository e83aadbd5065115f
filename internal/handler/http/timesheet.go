package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/timesheet"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type TimesheetHandler interface {
	CreateTimesheet(w http.ResponseWriter, r *http.Request)
	ListTimesheets(w http.ResponseWriter, r *http.Request)
	TimesheetStatistics(w http.ResponseWriter, r *http.Request)
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	UpdateTimesheet(w http.ResponseWriter, r *http.Request)
	DeleteTimesheet(w http.ResponseWriter, r *http.Request)
}

type timesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService) TimesheetHandler {
	return &timesheetHandlerImpl{
		timesheetService: timesheetService,
	}
}

// CreateTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) CreateTimesheet(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq timesheet.CreateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.Create(r.Context(), scope, createReq)
	if err != nil {
		slog.Error("CreateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Timesheet entry created successfully", result)
}

// ListTimesheets implements TimesheetHandler.
func (h *timesheetHandlerImpl) ListTimesheets(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := timesheet.Filter{
		Status: r.URL.Query().Get("status"),
		Year:   queryInt(r, "year", 0),
		Month:  queryInt(r, "month", 0),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 31),
	}

	result, total, err := h.timesheetService.List(r.Context(), scope, filter)
	if err != nil {
		slog.Error("ListTimesheets service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// TimesheetStatistics implements TimesheetHandler.
func (h *timesheetHandlerImpl) TimesheetStatistics(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.timesheetService.Statistics(r.Context(), scope, queryInt(r, "year", 0), queryInt(r, "month", 0))
	if err != nil {
		slog.Error("TimesheetStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.timesheetService.Get(r.Context(), scope, chi.URLParam(r, "timesheetId"))
	if err != nil {
		slog.Error("GetTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) UpdateTimesheet(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq timesheet.UpdateTimesheetRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateTimesheet decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.timesheetService.Update(r.Context(), scope, chi.URLParam(r, "timesheetId"), updateReq)
	if err != nil {
		slog.Error("UpdateTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry updated successfully", result)
}

// DeleteTimesheet implements TimesheetHandler.
func (h *timesheetHandlerImpl) DeleteTimesheet(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.timesheetService.Delete(r.Context(), scope, chi.URLParam(r, "timesheetId")); err != nil {
		slog.Error("DeleteTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Timesheet entry deleted successfully", nil)
}
