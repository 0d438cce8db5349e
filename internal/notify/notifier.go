package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/KoshakFSB/WCWD/internal/logger"
	"go.uber.org/zap"
)

// Notifier delivers messages through the external relay. Sends are
// best-effort: failures are reported for logging but never block a caller's
// state transition.
type Notifier interface {
	NotifyUser(ctx context.Context, userID int64, text string) error
	NotifyAdmins(ctx context.Context, text string)
}

// AdminRoster supplies the current admin IDs for broadcast fan-out. The
// roster is runtime-mutable, so it is read on every broadcast.
type AdminRoster interface {
	Snapshot() []int64
}

type Client struct {
	baseURL    string
	admins     AdminRoster
	httpClient *http.Client
}

func NewClient(baseURL string, admins AdminRoster) *Client {
	return &Client{
		baseURL:    baseURL,
		admins:     admins,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type message struct {
	UserID int64  `json:"user_id"`
	Text   string `json:"text"`
}

func (c *Client) NotifyUser(ctx context.Context, userID int64, text string) error {
	body, err := json.Marshal(message{UserID: userID, Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/api/notify", c.baseURL), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logger.Log.Error("failed to close notify response body", zap.Error(err))
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notify relay returned status %d", resp.StatusCode)
	}
	return nil
}

// NotifyAdmins fans out to every current admin and keeps going past
// individual failures.
func (c *Client) NotifyAdmins(ctx context.Context, text string) {
	for _, adminID := range c.admins.Snapshot() {
		if err := c.NotifyUser(ctx, adminID, text); err != nil {
			logger.Log.Warn("failed to notify admin",
				zap.Int64("admin_id", adminID), zap.Error(err))
		}
	}
}
