// Package cryptopay talks to the Crypto Pay gateway used for top-up invoices
// and payout checks. Declines and breaker-open states surface as a nil result
// without an error so callers can tell "no payment" from transport faults.
package cryptopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

type ClientInterface interface {
	CreateInvoice(ctx context.Context, amount float64, description string) (*Invoice, error)
	CreateCheck(ctx context.Context, userID int64, amount float64, description string) (*Check, error)
}

type Invoice struct {
	InvoiceID string `json:"invoice_id"`
	PayURL    string `json:"pay_url"`
}

type Check struct {
	CheckID   string     `json:"check_id"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Client struct {
	baseURL    string
	token      string
	asset      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewClient(baseURL, token, asset string) *Client {
	settings := gobreaker.Settings{
		Name:    "cryptopay",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Log.Warn("crypto pay circuit breaker state changed",
				zap.String("from", from.String()), zap.String("to", to.String()))
		},
	}

	return &Client{
		baseURL:    baseURL,
		token:      token,
		asset:      asset,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    gobreaker.NewCircuitBreaker(settings),
	}
}

type apiResponse struct {
	Ok     bool            `json:"ok"`
	Result json.RawMessage `json:"result"`
}

func (c *Client) call(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			fmt.Sprintf("%s/api/%s", c.baseURL, method), bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Crypto-Pay-API-Token", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer func(Body io.ReadCloser) {
			if err := Body.Close(); err != nil {
				logger.Log.Error("failed to close gateway response body", zap.Error(err))
			}
		}(resp.Body)

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
		}

		var apiResp apiResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
			return nil, err
		}
		if !apiResp.Ok {
			return nil, fmt.Errorf("gateway declined %s", method)
		}
		return nil, json.Unmarshal(apiResp.Result, out)
	})
	return err
}

func (c *Client) CreateInvoice(ctx context.Context, amount float64, description string) (*Invoice, error) {
	payload := map[string]any{
		"asset":       c.asset,
		"amount":      fmt.Sprintf("%.2f", amount),
		"description": description,
	}

	var invoice Invoice
	if err := c.call(ctx, "createInvoice", payload, &invoice); err != nil {
		logger.Log.Warn("invoice creation failed", zap.Error(err))
		return nil, nil
	}
	return &invoice, nil
}

func (c *Client) CreateCheck(ctx context.Context, userID int64, amount float64, description string) (*Check, error) {
	payload := map[string]any{
		"asset":             c.asset,
		"amount":            fmt.Sprintf("%.2f", amount),
		"pin_to_user_id":    userID,
		"description":       description,
		"external_spend_id": uuid.NewString(),
	}

	var check Check
	if err := c.call(ctx, "createCheck", payload, &check); err != nil {
		logger.Log.Warn("check creation failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, nil
	}
	return &check, nil
}
