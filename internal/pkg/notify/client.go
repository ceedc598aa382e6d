package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Type identifies which notification email to send.
type Type string

const (
	TypeContact Type = "contact"
	TypeBooking Type = "booking"
)

// Client posts submission payloads to the notification function.
type Client struct {
	baseURL string
	http    *http.Client
}

// Request is the notification function request body.
type Request struct {
	Type Type        `json:"type"`
	Data interface{} `json:"data"`
}

// Response is the notification function response envelope.
type Response struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

// ErrorInfo carries the function's error details.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewClient creates a notification sink client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Send posts one notification and decodes the function's envelope.
func (c *Client) Send(ctx context.Context, typ Type, data interface{}) error {
	if c == nil || c.http == nil {
		return fmt.Errorf("notify request error: client is nil")
	}
	if strings.TrimSpace(c.baseURL) == "" {
		return fmt.Errorf("notify config error: base_url is empty")
	}

	body, err := json.Marshal(Request{Type: typ, Data: data})
	if err != nil {
		return fmt.Errorf("notify request error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify request error: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("notify timeout: %w", err)
		}
		return fmt.Errorf("notify request error: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var envelope Response
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("notify response error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if !envelope.Success {
		if envelope.Error != nil {
			return fmt.Errorf("notify error: %s - %s", envelope.Error.Code, envelope.Error.Message)
		}
		return fmt.Errorf("notify error: status=%d success=false", resp.StatusCode)
	}

	return nil
}
