package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/payment"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type SalaryPaymentHandler interface {
	CreatePayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	PaymentStatistics(w http.ResponseWriter, r *http.Request)
	GetPayment(w http.ResponseWriter, r *http.Request)
	UpdatePayment(w http.ResponseWriter, r *http.Request)
	DeletePayment(w http.ResponseWriter, r *http.Request)
}

type salaryPaymentHandlerImpl struct {
	paymentService payment.SalaryPaymentService
}

func NewSalaryPaymentHandler(paymentService payment.SalaryPaymentService) SalaryPaymentHandler {
	return &salaryPaymentHandlerImpl{
		paymentService: paymentService,
	}
}

// CreatePayment implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) CreatePayment(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq payment.CreateSalaryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreatePayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.Create(r.Context(), scope, createReq)
	if err != nil {
		slog.Error("CreatePayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary payment recorded successfully", result)
}

// ListPayments implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := payment.Filter{
		PaymentMethod: r.URL.Query().Get("payment_method"),
		Year:          queryInt(r, "year", 0),
		Month:         queryInt(r, "month", 0),
		Page:          queryInt(r, "page", 1),
		Limit:         queryInt(r, "limit", 20),
	}

	result, total, err := h.paymentService.List(r.Context(), scope, filter)
	if err != nil {
		slog.Error("ListPayments service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// PaymentStatistics implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) PaymentStatistics(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.paymentService.Statistics(r.Context(), scope, queryInt(r, "year", 0))
	if err != nil {
		slog.Error("PaymentStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayment implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) GetPayment(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.paymentService.Get(r.Context(), scope, chi.URLParam(r, "paymentId"))
	if err != nil {
		slog.Error("GetPayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdatePayment implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq payment.UpdateSalaryPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdatePayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.paymentService.Update(r.Context(), scope, chi.URLParam(r, "paymentId"), updateReq)
	if err != nil {
		slog.Error("UpdatePayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary payment updated successfully", result)
}

// DeletePayment implements SalaryPaymentHandler.
func (h *salaryPaymentHandlerImpl) DeletePayment(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.paymentService.Delete(r.Context(), scope, chi.URLParam(r, "paymentId")); err != nil {
		slog.Error("DeletePayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Salary payment deleted successfully", nil)
}
