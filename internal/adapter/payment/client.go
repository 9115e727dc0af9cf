package payment

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
	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// Client exposes operations against the external card-payment provider.
type Client interface {
	CreateIntent(ctx context.Context, amount float64) (*model.PaymentIntentHandle, error)
	GetStatus(ctx context.Context, intentID string) (model.ProviderPaymentStatus, error)
}

// HTTPClient implements Client via the provider's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type createIntentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type createIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

type intentStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// NewHTTPClient creates HTTP provider client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment provider url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment provider url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateIntent registers a new payment intent with the provider.
func (c *HTTPClient) CreateIntent(ctx context.Context, amount float64) (*model.PaymentIntentHandle, error) {
	body, err := json.Marshal(createIntentRequest{Amount: amount, Currency: "usd"})
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/payment_intents")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create intent: %w: %w", domainErrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment provider request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return nil, fmt.Errorf("create intent: %w: %s", domainErrors.ErrExternalService, resp.Status)
	}

	var data createIntentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("create intent: %w: %w", domainErrors.ErrExternalService, err)
	}
	if data.ID == "" || data.ClientSecret == "" {
		return nil, fmt.Errorf("create intent: %w: incomplete provider response", domainErrors.ErrExternalService)
	}
	return &model.PaymentIntentHandle{ID: data.ID, ClientSecret: data.ClientSecret}, nil
}

// GetStatus queries the provider for the current state of an intent.
func (c *HTTPClient) GetStatus(ctx context.Context, intentID string) (model.ProviderPaymentStatus, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/payment_intents/", intentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get intent status: %w: %w", domainErrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var data intentStatusResponse
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			return "", fmt.Errorf("get intent status: %w: %w", domainErrors.ErrExternalService, err)
		}
		switch status := model.ProviderPaymentStatus(data.Status); status {
		case model.ProviderPaymentSucceeded, model.ProviderPaymentPending, model.ProviderPaymentFailed:
			return status, nil
		default:
			return "", fmt.Errorf("get intent status: %w: unknown status %q", domainErrors.ErrExternalService, data.Status)
		}
	case http.StatusNotFound:
		return "", domainErrors.ErrNotFound
	default:
		payload, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment provider request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(payload)))
		return "", fmt.Errorf("get intent status: %w: %s", domainErrors.ErrExternalService, resp.Status)
	}
}
