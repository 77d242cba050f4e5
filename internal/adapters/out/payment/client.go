// Package payment implements the PaymentProcessor port against the payment
// provider's HTTP API.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"workorders/internal/core/domain/model/payout"
	"workorders/internal/core/ports"
)

// DefaultTimeout bounds a single payout call to the provider. The caller
// treats a timeout like any other processor failure: the request returns to
// approved and the reservation stays in place.
const DefaultTimeout = 15 * time.Second

var errEmptyBaseURL = errors.New("payment processor base URL must not be empty")

// Client calls the payment provider over HTTP.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a processor client for the given provider endpoint.
// A zero timeout falls back to DefaultTimeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errEmptyBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type payoutRequestBody struct {
	PayoutID    string `json:"payout_id"`
	WorkerID    string `json:"worker_id"`
	AmountCents int64  `json:"amount_cents"`
	Method      string `json:"method"`
	Target      string `json:"target"`
}

type payoutResponseBody struct {
	Reference string `json:"reference"`
	Message   string `json:"message"`
}

// ProcessPayout submits the payout to the provider and returns its payment
// reference. Any failure comes back as *ports.ProcessorError so the caller
// can retry later; transport errors carry status code 0.
func (c *Client) ProcessPayout(ctx context.Context, request *payout.PayoutRequest) (string, error) {
	if err := request.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(payoutRequestBody{
		PayoutID:    request.ID().String(),
		WorkerID:    request.WorkerID().String(),
		AmountCents: request.Amount().Cents(),
		Method:      request.Method().String(),
		Target:      request.Target(),
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.baseURL+"/payouts", bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", &ports.ProcessorError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	// Responses are small; the limit only caps a misbehaving provider.
	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &ports.ProcessorError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &ports.ProcessorError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(respBody),
		}
	}

	var parsed payoutResponseBody
	if err = json.Unmarshal(respBody, &parsed); err != nil {
		return "", &ports.ProcessorError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("malformed provider response: %s", err),
		}
	}

	if parsed.Reference == "" {
		return "", &ports.ProcessorError{
			StatusCode: resp.StatusCode,
			Message:    "provider response is missing the payment reference",
		}
	}

	return parsed.Reference, nil
}

// failureMessage prefers the provider's structured message over the raw body.
func failureMessage(respBody []byte) string {
	var parsed payoutResponseBody
	if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Message != "" {
		return parsed.Message
	}
	if len(respBody) > 0 {
		return string(respBody)
	}
	return "provider returned an empty error response"
}
