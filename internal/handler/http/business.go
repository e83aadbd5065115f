package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kadro-hq/kadro-backend-go/internal/domain/auth"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/business"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/response"
)

type BusinessHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type BusinessHandlerImpl struct {
	businessService business.BusinessService
}

func NewBusinessHandler(businessService business.BusinessService) BusinessHandler {
	return &BusinessHandlerImpl{
		businessService: businessService,
	}
}

// Get implements BusinessHandler.
func (b *BusinessHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := b.businessService.GetOwn(r.Context(), ownerAccountID)
	if err != nil {
		slog.Error("GetBusiness service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements BusinessHandler.
func (b *BusinessHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	ownerAccountID, ok := middleware.OwnerAccountIDFromContext(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var updateReq business.UpdateBusinessRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("UpdateBusiness decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := b.businessService.UpdateOwn(r.Context(), ownerAccountID, updateReq)
	if err != nil {
		slog.Error("UpdateBusiness service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Business updated successfully", result)
}
