package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	RegisterEmployee(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListAccounts(w http.ResponseWriter, r *http.Request)
	ListDeletedAccounts(w http.ResponseWriter, r *http.Request)
	DeactivateAccount(w http.ResponseWriter, r *http.Request)
	RestoreAccount(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.RegisterOwner(r.Context(), registerReq)
	if err != nil {
		slog.Error("Register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Account registered successfully", result)
}

// RegisterEmployee implements AuthHandler.
func (a *AuthHandlerImpl) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var registerReq auth.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&registerReq); err != nil {
		slog.Error("RegisterEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.RegisterEmployee(r.Context(), actor, registerReq)
	if err != nil {
		slog.Error("RegisterEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee account registered successfully", result)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Logged in successfully", result)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := a.authService.Me(r.Context(), actor.AccountID)
	if err != nil {
		slog.Error("Me service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateProfile implements AuthHandler.
func (a *AuthHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq account.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Role changes on one's own profile are an owner-level concern; a
	// non-owner may only rename themselves.
	if updateReq.Role != nil && actor.Role != account.RoleOwner {
		response.HandleError(w, account.ErrOwnerAccessRequired)
		return
	}

	result, err := a.authService.UpdateProfile(r.Context(), actor.AccountID, updateReq)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", result)
}

// ListAccounts implements AuthHandler.
func (a *AuthHandlerImpl) ListAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := a.authService.ListAccounts(r.Context())
	if err != nil {
		slog.Error("ListAccounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListDeletedAccounts implements AuthHandler.
func (a *AuthHandlerImpl) ListDeletedAccounts(w http.ResponseWriter, r *http.Request) {
	result, err := a.authService.ListDeletedAccounts(r.Context())
	if err != nil {
		slog.Error("ListDeletedAccounts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeactivateAccount implements AuthHandler.
func (a *AuthHandlerImpl) DeactivateAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	result, err := a.authService.DeactivateAccount(r.Context(), accountID)
	if err != nil {
		slog.Error("DeactivateAccount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account deactivated successfully", result)
}

// RestoreAccount implements AuthHandler.
func (a *AuthHandlerImpl) RestoreAccount(w http.ResponseWriter, r *http.Request) {
	accountID := chi.URLParam(r, "accountId")

	result, err := a.authService.RestoreAccount(r.Context(), accountID)
	if err != nil {
		slog.Error("RestoreAccount service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Account restored successfully", result)
}
