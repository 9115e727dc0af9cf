package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/coursedesk/coursedesk/internal/domain/errors"
)

// Message is a fully rendered email handed to the delivery relay.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	TextBody string `json:"text_body"`
}

// Sender delivers rendered messages. Delivery transport is external; this
// service only hands messages over.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// HTTPSender implements Sender via the mail relay's HTTP API.
type HTTPSender struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPSender creates HTTP relay client with default timeout.
func NewHTTPSender(baseURL string, logger *slog.Logger) (*HTTPSender, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse mail relay url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("mail relay url must be absolute")
	}
	return &HTTPSender{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Send posts the message to the relay.
func (s *HTTPSender) Send(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	endpoint := *s.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/messages")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send mail: %w: %w", domainErrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(resp.Body)
		s.logger.Error("mail relay request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return fmt.Errorf("send mail: %w: %s", domainErrors.ErrExternalService, resp.Status)
	}
	return nil
}
