// Package payment provides a REST client for the payment provider used to
// manage payment intents over the checkout lifecycle.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

// RestPaymentGateway implements PaymentGateway against the provider's HTTP
// API. Amounts are sent as decimal strings, the provider handles minor unit
// conversion.
type RestPaymentGateway struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewRestPaymentGateway creates a payment gateway client for the given
// provider endpoint.
func NewRestPaymentGateway(baseURL string, apiKey string) (*RestPaymentGateway, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if apiKey == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}

	return &RestPaymentGateway{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
	}, nil
}

type intentRequest struct {
	Amount         string `json:"amount"`
	Currency       string `json:"currency,omitempty"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

type intentResponse struct {
	ID string `json:"id"`
}

// RequestIntent creates a payment intent for the given amount and returns the
// provider's intent id. The idempotency key makes retries safe: the provider
// returns the already created intent for a repeated key.
func (g *RestPaymentGateway) RequestIntent(
	ctx context.Context,
	amount decimal.Decimal,
	currency string,
	idempotencyKey string,
) (string, error) {
	body := intentRequest{
		Amount:         amount.String(),
		Currency:       currency,
		IdempotencyKey: idempotencyKey,
	}

	var response intentResponse
	if err := g.do(ctx, http.MethodPost, "/v1/intents", body, &response); err != nil {
		return "", err
	}

	if response.ID == "" {
		return "", fmt.Errorf("payment provider returned intent without id")
	}
	return response.ID, nil
}

// UpdateIntent replaces the amount of an existing payment intent.
func (g *RestPaymentGateway) UpdateIntent(ctx context.Context, paymentID string, amount decimal.Decimal) error {
	body := intentRequest{Amount: amount.String()}
	return g.do(ctx, http.MethodPatch, "/v1/intents/"+paymentID, body, nil)
}

// Capture captures a payment intent, charging the customer.
func (g *RestPaymentGateway) Capture(ctx context.Context, paymentID string) error {
	return g.do(ctx, http.MethodPost, "/v1/intents/"+paymentID+"/capture", nil, nil)
}

// Cancel voids a payment intent that will not be captured.
func (g *RestPaymentGateway) Cancel(ctx context.Context, paymentID string) error {
	return g.do(ctx, http.MethodPost, "/v1/intents/"+paymentID+"/cancel", nil, nil)
}

func (g *RestPaymentGateway) do(ctx context.Context, method string, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return err
	}
	request.Header.Set("Authorization", "Bearer "+g.apiKey)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := g.client.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(response.Body, 1024))
		return fmt.Errorf("payment provider responded %d on %s %s: %s",
			response.StatusCode, method, path, string(detail))
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(out)
}
