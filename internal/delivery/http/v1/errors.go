package v1

import (
	"errors"
	"net/http"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"
)

// respondError maps usecase errors onto HTTP statuses. Anything without a
// mapping gets the fallback status with the error's own message.
func respondError(w http.ResponseWriter, err error, fallback int) {
	var payErr *usecase.PaymentError
	var transErr *domain.ErrInvalidTransition

	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.WriteError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrEmptyCart):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.WriteError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, usecase.ErrOrderNotSaved):
		utils.WriteError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &payErr):
		utils.WriteError(w, http.StatusPaymentRequired, payErr.Message)
	case errors.As(err, &transErr):
		utils.WriteError(w, http.StatusConflict, transErr.Error())
	default:
		utils.WriteError(w, fallback, err.Error())
	}
}

// currentUser pulls the authenticated user placed in context by the auth
// middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(domain.UserContextKey).(*domain.User)
	if !ok || user == nil {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}
