package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const defaultResendURL = "https://api.resend.com"

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("mail provider not configured")

// Message is a single email to send.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a message and returns the provider id.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Resend sends via the Resend HTTP API.
type Resend struct {
	apiKey  string
	from    string
	baseURL string
	client  *http.Client
}

// Option customises a Resend client.
type Option func(*Resend)

// WithBaseURL points the client at another API host.
func WithBaseURL(base string) Option {
	return func(r *Resend) { r.baseURL = strings.TrimRight(base, "/") }
}

// WithHTTPClient swaps the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resend) { r.client = client }
}

// NewResend builds a Resend client. from is used when a message has none.
func NewResend(apiKey, from string, opts ...Option) *Resend {
	r := &Resend{
		apiKey:  strings.TrimSpace(apiKey),
		from:    from,
		baseURL: defaultResendURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// Send posts msg to /emails.
func (r *Resend) Send(ctx context.Context, msg Message) (string, error) {
	if r.apiKey == "" {
		return "", ErrNotConfigured
	}
	if len(msg.To) == 0 {
		return "", errors.New("mail has no recipient")
	}

	from := msg.From
	if from == "" {
		from = r.from
	}

	payload, err := json.Marshal(resendPayload{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		HTML:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return "", fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode resend response: %w", err)
	}
	return out.ID, nil
}
