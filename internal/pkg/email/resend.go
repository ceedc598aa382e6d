package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// ResendConfig holds Resend configuration
type ResendConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// Sender interface for sending emails
type Sender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// EmailMessage represents an email to send
type EmailMessage struct {
	To          string
	Subject     string
	HTMLContent string
}

// ResendClient sends emails via the Resend API
type ResendClient struct {
	config     ResendConfig
	endpoint   string
	httpClient *http.Client
}

// NewResendClient creates a new Resend email client
func NewResendClient(config ResendConfig) *ResendClient {
	return &ResendClient{
		config:   config,
		endpoint: resendEndpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// resendRequest represents the Resend API request body
type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// Send sends an email via Resend
func (c *ResendClient) Send(ctx context.Context, msg *EmailMessage) error {
	request := resendRequest{
		From:    fmt.Sprintf("%s <%s>", c.config.FromName, c.config.FromEmail),
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLContent,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
