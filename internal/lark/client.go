package lark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends messages to a Lark custom-bot webhook.
type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{Timeout: 10 * time.Second}}
}

// APIError is a webhook response outside the 2xx range.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.StatusCode, e.Body)
}

// response is the JSON body Lark returns. The webhook answers HTTP 200 even
// for rejected messages (e.g. a signature mismatch) and signals the failure
// through a non-zero code.
type response struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// Send posts msg to the webhook URL. It returns an *APIError for non-2xx
// responses, an error for 2xx responses carrying a non-zero Lark code, and
// a wrapped transport error otherwise.
func (c *Client) Send(ctx context.Context, webhookURL string, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending notification: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var r response
	if err := json.Unmarshal(respBody, &r); err == nil && r.Code != 0 {
		return fmt.Errorf("lark rejected message (code %d): %s", r.Code, r.Msg)
	}

	return nil
}
