package v1

import (
	"io"
	"log/slog"
	"net/http"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/pkg/utils"
)

// maxNotifyPayload bounds the relay body size (1 MB).
const maxNotifyPayload = 1 << 20

type NotifyHandler struct {
	notifier domain.OrderNotifier
}

func NewNotifyHandler(notifier domain.OrderNotifier) *NotifyHandler {
	return &NotifyHandler{notifier: notifier}
}

// ForwardOrder relays the request body to the configured webhook. Delivery
// failure is logged but still reported as success, so a dead webhook never
// breaks the order flow on the client.
func (h *NotifyHandler) ForwardOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := currentUser(w, r); !ok {
		return
	}

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxNotifyPayload))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if h.notifier != nil {
		if err := h.notifier.Forward(r.Context(), payload); err != nil {
			slog.Error("Handler: ForwardOrder - webhook delivery failed", "error", err)
		}
	}

	utils.WriteJSON(w, http.StatusOK, domain.Response{Success: true})
}
