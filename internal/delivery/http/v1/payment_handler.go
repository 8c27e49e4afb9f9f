package v1

import (
	"net/http"

	"sunnyside-backend/internal/usecase"
	"sunnyside-backend/pkg/utils"

	"github.com/goccy/go-json"
)

type PaymentHandler struct {
	orderUC *usecase.OrderUsecase
}

func NewPaymentHandler(uc *usecase.OrderUsecase) *PaymentHandler {
	return &PaymentHandler{orderUC: uc}
}

type paymentIntentReq struct {
	Items []usecase.PaymentLine `json:"items"`
}

// CreateIntent opens a processor payment intent. The total is recomputed
// from catalog prices; any amount sent by the client is ignored.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	var req paymentIntentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	intent, err := h.orderUC.CreatePaymentIntent(r.Context(), req.Items)
	if err != nil {
		respondError(w, err, http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"id":           intent.ID,
		"clientSecret": intent.ClientSecret,
		"amount":       intent.Amount,
		"currency":     intent.Currency,
	})
}
