package v1

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
)

func TestRespondError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback int
		want     int
	}{
		{"not found", domain.ErrNotFound, http.StatusInternalServerError, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("load order: %w", domain.ErrNotFound), http.StatusInternalServerError, http.StatusNotFound},
		{"empty cart", domain.ErrEmptyCart, http.StatusInternalServerError, http.StatusBadRequest},
		{"bad credentials", usecase.ErrInvalidCredentials, http.StatusInternalServerError, http.StatusUnauthorized},
		{"order not saved", fmt.Errorf("%w: connection reset", usecase.ErrOrderNotSaved), http.StatusBadRequest, http.StatusInternalServerError},
		{"payment error", &usecase.PaymentError{Message: "Your card was declined."}, http.StatusInternalServerError, http.StatusPaymentRequired},
		{"invalid transition", &domain.ErrInvalidTransition{From: "pending", To: "delivered"}, http.StatusInternalServerError, http.StatusConflict},
		{"unmapped error uses fallback", errors.New("boom"), http.StatusBadRequest, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondError(rec, tt.err, tt.fallback)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
