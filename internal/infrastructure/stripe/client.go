package stripe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sunnyside-backend/internal/domain"

	"github.com/goccy/go-json"
)

// Client talks to the Stripe PaymentIntents API over plain HTTP. A nil
// client reports card payments as unconfigured instead of panicking.
type Client struct {
	secretKey  string
	apiBase    string
	httpClient *http.Client
}

func NewClient(secretKey, apiBase string, timeout time.Duration) *Client {
	if secretKey == "" {
		return nil
	}
	return &Client{
		secretKey: secretKey,
		apiBase:   strings.TrimSuffix(apiBase, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// intentResponse mirrors the fields of Stripe's payment_intent object we
// actually read.
type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Status       string `json:"status"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Error        *struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}

func (c *Client) CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	if c == nil {
		return nil, fmt.Errorf("payment provider not configured")
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Set("automatic_payment_methods[enabled]", "true")

	return c.do(ctx, http.MethodPost, "/v1/payment_intents", strings.NewReader(form.Encode()))
}

func (c *Client) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if c == nil {
		return nil, fmt.Errorf("payment provider not configured")
	}
	return c.do(ctx, http.MethodGet, "/v1/payment_intents/"+url.PathEscape(id), nil)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*domain.PaymentIntent, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating stripe request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stripe request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading stripe response: %w", err)
	}

	var parsed intentResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("decoding stripe response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= 400 {
		// Surface the processor's own message verbatim so the client can
		// show it to the customer.
		msg := fmt.Sprintf("stripe error (status %d)", resp.StatusCode)
		if parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return &domain.PaymentIntent{ErrorMessage: msg}, fmt.Errorf("%s", msg)
	}

	return &domain.PaymentIntent{
		ID:           parsed.ID,
		ClientSecret: parsed.ClientSecret,
		Status:       parsed.Status,
		Amount:       parsed.Amount,
		Currency:     parsed.Currency,
	}, nil
}
