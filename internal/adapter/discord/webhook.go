package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Client implements ports.Messenger by posting to a Discord webhook.
type Client struct {
	webhookURL string
	threadID   string
	http       *http.Client
	log        *slog.Logger
}

// NewClient builds a webhook client. threadID is optional; when set, messages
// are delivered into that thread.
func NewClient(webhookURL, threadID string, log *slog.Logger) *Client {
	return &Client{
		webhookURL: webhookURL,
		threadID:   threadID,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log,
	}
}

type webhookPayload struct {
	Content string `json:"content"`
}

// Send posts the content to the webhook. Discord answers 204 No Content on
// success; any non-2xx status is an error carrying status and body.
func (c *Client) Send(ctx context.Context, content string) error {
	if c.webhookURL == "" {
		return errors.New("missing webhook url")
	}
	u, err := url.Parse(c.webhookURL)
	if err != nil {
		return err
	}
	if c.threadID != "" {
		q := u.Query()
		q.Set("thread_id", c.threadID)
		u.RawQuery = q.Encode()
	}

	body, err := json.Marshal(webhookPayload{Content: content})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("discord: unexpected status %d: %s", resp.StatusCode, string(respBody))
	}
	c.log.Debug("webhook delivered", slog.Int("status", resp.StatusCode))
	return nil
}
