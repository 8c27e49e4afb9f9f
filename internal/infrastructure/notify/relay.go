package notify

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"sunnyside-backend/internal/domain"

	"github.com/goccy/go-json"
)

// Relay forwards order payloads to an external automation webhook
// (n8n, Zapier or similar). A nil relay drops everything silently.
type Relay struct {
	webhookURL string
	httpClient *http.Client
	timeout    time.Duration
}

func NewRelay(webhookURL string, timeout time.Duration) *Relay {
	if webhookURL == "" {
		log.Println("[notify] ORDER_WEBHOOK_URL not configured. Order notifications disabled.")
		return nil
	}
	return &Relay{
		webhookURL: webhookURL,
		timeout:    timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward posts the raw payload to the webhook.
func (r *Relay) Forward(ctx context.Context, payload []byte) error {
	if r == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// NotifyOrderPlaced sends the order summary async so checkout never waits
// on the webhook. Failures are logged and dropped.
func (r *Relay) NotifyOrderPlaced(order *domain.Order, user *domain.User) {
	if r == nil {
		return
	}

	items := make([]map[string]any, len(order.Items))
	for i, item := range order.Items {
		items[i] = map[string]any{
			"name":     item.Name,
			"quantity": item.Quantity,
			"price":    item.Price,
		}
	}

	payload, err := json.Marshal(map[string]any{
		"event":           "order.placed",
		"orderId":         order.ID,
		"status":          order.Status,
		"paymentStatus":   order.PaymentStatus,
		"paymentMethod":   order.PaymentMethod,
		"totalAmount":     order.TotalAmount,
		"deliveryAddress": order.DeliveryAddress,
		"notes":           order.Notes,
		"items":           items,
		"customer": map[string]any{
			"email":    user.Email,
			"fullName": user.FullName,
			"phone":    user.Phone,
		},
		"placedAt": order.CreatedAt,
	})
	if err != nil {
		log.Printf("[notify] Failed to marshal order payload: %v", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.Forward(ctx, payload); err != nil {
			log.Printf("[notify] Failed to deliver order %s notification: %v", order.ID, err)
		}
	}()
}
