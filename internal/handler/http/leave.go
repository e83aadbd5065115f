package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/leave"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	CreateLeave(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	LeaveStatistics(w http.ResponseWriter, r *http.Request)
	GetLeave(w http.ResponseWriter, r *http.Request)
	UpdateLeave(w http.ResponseWriter, r *http.Request)
	DecideLeave(w http.ResponseWriter, r *http.Request)
	DeleteLeave(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// CreateLeave implements LeaveHandler.
func (h *leaveHandlerImpl) CreateLeave(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var createReq leave.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("CreateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Create(r.Context(), scope, createReq)
	if err != nil {
		slog.Error("CreateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request created successfully", result)
}

// ListLeaves implements LeaveHandler.
func (h *leaveHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	filter := leave.Filter{
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
		Page:   queryInt(r, "page", 1),
		Limit:  queryInt(r, "limit", 20),
	}

	result, total, err := h.leaveService.List(r.Context(), scope, filter)
	if err != nil {
		slog.Error("ListLeaves service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result, paginationMeta(filter.Page, filter.Limit, total))
}

// LeaveStatistics implements LeaveHandler.
func (h *leaveHandlerImpl) LeaveStatistics(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.leaveService.Statistics(r.Context(), scope, queryInt(r, "year", 0))
	if err != nil {
		slog.Error("LeaveStatistics service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLeave implements LeaveHandler.
func (h *leaveHandlerImpl) GetLeave(w http.ResponseWriter, r *http.Request) {
	_, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.leaveService.Get(r.Context(), scope, chi.URLParam(r, "leaveId"))
	if err != nil {
		slog.Error("GetLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateLeave implements LeaveHandler.
func (h *leaveHandlerImpl) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq leave.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Update(r.Context(), actor, scope, chi.URLParam(r, "leaveId"), updateReq)
	if err != nil {
		slog.Error("UpdateLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request updated successfully", result)
}

// DecideLeave implements LeaveHandler.
func (h *leaveHandlerImpl) DecideLeave(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var decideReq leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("DecideLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Decide(r.Context(), actor, scope, chi.URLParam(r, "leaveId"), decideReq)
	if err != nil {
		slog.Error("DecideLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request processed successfully", result)
}

// DeleteLeave implements LeaveHandler.
func (h *leaveHandlerImpl) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	actor, scope, ok := actorAndScope(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	if err := h.leaveService.Delete(r.Context(), actor, scope, chi.URLParam(r, "leaveId")); err != nil {
		slog.Error("DeleteLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request deleted successfully", nil)
}
