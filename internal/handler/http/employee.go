package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	ListDeletedEmployees(w http.ResponseWriter, r *http.Request)
	EmployeeStatistics(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	RestoreEmployee(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
	}
}

// CreateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), ownerAccountID, createReq)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// ListEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := employee.Filter{
		Search:     r.URL.Query().Get("search"),
		Department: r.URL.Query().Get("department"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	result, total, err := h.employeeService.List(r.Context(), ownerAccountID, filter)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// ListDeletedEmployees implements EmployeeHandler.
func (h *employeeHandlerImpl) ListDeletedEmployees(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.employeeService.ListDeleted(r.Context(), ownerAccountID)
	if err != nil {
		slog.Error("ListDeletedEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// EmployeeStatistics implements EmployeeHandler.
func (h *employeeHandlerImpl) EmployeeStatistics(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.employeeService.Statistics(r.Context(), ownerAccountID)
	if err != nil {
		slog.Error("EmployeeStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.employeeService.Get(r.Context(), actor, scope)
	if err != nil {
		slog.Error("GetEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Update(r.Context(), actor, scope, updateReq)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", result)
}

// DeleteEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.employeeService.Delete(r.Context(), ownerAccountID, chi.URLParam(r, "employeeId"))
	if err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deactivated successfully", result)
}

// RestoreEmployee implements EmployeeHandler.
func (h *employeeHandlerImpl) RestoreEmployee(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.employeeService.Restore(r.Context(), ownerAccountID, chi.URLParam(r, "employeeId"))
	if err != nil {
		slog.Error("RestoreEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee restored successfully", result)
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func paginationMeta(page, limit int, total int64) *response.Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
