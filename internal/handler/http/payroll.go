package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payroll"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreatePayroll(w http.ResponseWriter, r *http.Request)
	ListPayrolls(w http.ResponseWriter, r *http.Request)
	PayrollStatistics(w http.ResponseWriter, r *http.Request)
	GetPayroll(w http.ResponseWriter, r *http.Request)
	UpdatePayroll(w http.ResponseWriter, r *http.Request)
	PayPayroll(w http.ResponseWriter, r *http.Request)
	PayslipPayroll(w http.ResponseWriter, r *http.Request)
	DeletePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// CreatePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) CreatePayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Create(r.Context(), scope, createReq)
	if err != nil {
		slog.Error("CreatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created successfully", result)
}

// ListPayrolls implements PayrollHandler.
func (h *payrollHandlerImpl) ListPayrolls(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := payroll.Filter{
		Status: r.URL.Query().Get("status"),
		Year:   r.URL.Query().Get("year"),
		Month:  r.URL.Query().Get("month"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 12),
	}

	result, total, err := h.payrollService.List(r.Context(), scope, filter)
	if err != nil {
		slog.Error("ListPayrolls service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// PayrollStatistics implements PayrollHandler.
func (h *payrollHandlerImpl) PayrollStatistics(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.Statistics(r.Context(), scope, r.URL.Query().Get("year"))
	if err != nil {
		slog.Error("PayrollStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) GetPayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.Get(r.Context(), scope, chi.URLParam(r, "payrollId"))
	if err != nil {
		slog.Error("GetPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) UpdatePayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq payroll.UpdatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.Update(r.Context(), scope, chi.URLParam(r, "payrollId"), updateReq)
	if err != nil {
		slog.Error("UpdatePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll updated successfully", result)
}

// PayPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) PayPayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.MarkAsPaid(r.Context(), scope, chi.URLParam(r, "payrollId"))
	if err != nil {
		slog.Error("PayPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll marked as paid", result)
}

// PayslipPayroll implements PayrollHandler.
func (h *payrollHandlerImpl) PayslipPayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	data, filename, err := h.payrollService.Payslip(r.Context(), scope, chi.URLParam(r, "payrollId"))
	if err != nil {
		slog.Error("PayslipPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", filename, data)
}

// DeletePayroll implements PayrollHandler.
func (h *payrollHandlerImpl) DeletePayroll(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.payrollService.Delete(r.Context(), scope, chi.URLParam(r, "payrollId")); err != nil {
		slog.Error("DeletePayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted successfully", nil)
}
