package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/advance"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type AdvanceHandler interface {
	CreateAdvance(w http.ResponseWriter, r *http.Request)
	ListAdvances(w http.ResponseWriter, r *http.Request)
	ListBusinessAdvances(w http.ResponseWriter, r *http.Request)
	AdvanceStatistics(w http.ResponseWriter, r *http.Request)
	GetAdvance(w http.ResponseWriter, r *http.Request)
	UpdateAdvance(w http.ResponseWriter, r *http.Request)
	DecideAdvance(w http.ResponseWriter, r *http.Request)
	DeleteAdvance(w http.ResponseWriter, r *http.Request)
}

type advanceHandlerImpl struct {
	advanceService advance.AdvanceService
}

func NewAdvanceHandler(advanceService advance.AdvanceService) AdvanceHandler {
	return &advanceHandlerImpl{
		advanceService: advanceService,
	}
}

// CreateAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) CreateAdvance(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq advance.CreateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Create(r.Context(), scope, createReq)
	if err != nil {
		slog.Error("CreateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Advance request created successfully", result)
}

// ListAdvances implements AdvanceHandler.
func (h *advanceHandlerImpl) ListAdvances(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := advance.Filter{
		Status: r.URL.Query().Get("status"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}

	result, total, err := h.advanceService.List(r.Context(), scope, filter)
	if err != nil {
		slog.Error("ListAdvances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// ListBusinessAdvances implements AdvanceHandler.
func (h *advanceHandlerImpl) ListBusinessAdvances(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}
	actor, ok := middleware.ActorFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := advance.Filter{
		Status:     r.URL.Query().Get("status"),
		EmployeeID: r.URL.Query().Get("employee_id"),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 20),
	}

	// Employee callers only ever see their own requests here.
	if !actor.IsManager() {
		if actor.EmployeeID == nil {
			response.HandleError(w, employee.ErrOwnRecordsOnly)
			return
		}
		filter.EmployeeID = *actor.EmployeeID
	}

	result, total, err := h.advanceService.ListBusiness(r.Context(), ownerAccountID, filter)
	if err != nil {
		slog.Error("ListBusinessAdvances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// AdvanceStatistics implements AdvanceHandler.
func (h *advanceHandlerImpl) AdvanceStatistics(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.advanceService.Statistics(r.Context(), scope, queryInt(r, "year", 0))
	if err != nil {
		slog.Error("AdvanceStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) GetAdvance(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.advanceService.Get(r.Context(), scope, chi.URLParam(r, "advanceId"))
	if err != nil {
		slog.Error("GetAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) UpdateAdvance(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq advance.UpdateAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Update(r.Context(), actor, scope, chi.URLParam(r, "advanceId"), updateReq)
	if err != nil {
		slog.Error("UpdateAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request updated successfully", result)
}

// DecideAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) DecideAdvance(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var decideReq advance.DecideAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideAdvance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.advanceService.Decide(r.Context(), actor, scope, chi.URLParam(r, "advanceId"), decideReq)
	if err != nil {
		slog.Error("DecideAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request processed successfully", result)
}

// DeleteAdvance implements AdvanceHandler.
func (h *advanceHandlerImpl) DeleteAdvance(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.advanceService.Delete(r.Context(), actor, scope, chi.URLParam(r, "advanceId")); err != nil {
		slog.Error("DeleteAdvance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Advance request deleted successfully", nil)
}
