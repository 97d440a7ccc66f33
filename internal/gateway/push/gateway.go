package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"parcel-service/internal/gateway"
	retrierconfig "parcel-service/pkg/retrier"
	"parcel-service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "push-provider"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type sendRequest struct {
	RecipientID int64  `json:"recipient_id"`
	Title       string `json:"title"`
	Body        string `json:"body"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("push provider responded %d", e.code)
}

// PushGateway внешний провайдер push-уведомлений, вызывается только
// dispatch-воркером.
type PushGateway struct {
	client  httpClient
	baseURL string
	apiKey  string
	retrier retrier
}

func New(client httpClient, baseURL, apiKey string) *PushGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &PushGateway{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *PushGateway) Send(ctx context.Context, recipientID int64, title, body string) error {
	payload, err := json.Marshal(sendRequest{
		RecipientID: recipientID,
		Title:       title,
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("gateway push, marshal payload: %w", err)
	}

	err = g.executeWithMetrics(ctx, "Send", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/push", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.apiKey)

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
			return &statusError{code: resp.StatusCode}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("gateway push, send to %d: %w", recipientID, err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var st *statusError
	if errors.As(err, &st) {
		return st.code == http.StatusTooManyRequests || st.code >= http.StatusInternalServerError
	}

	// сетевые ошибки и таймауты транспорта
	return true
}

func (g *PushGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	gateway.RequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		gateway.RetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}
	var st *statusError
	if errors.As(err, &st) {
		return strconv.Itoa(st.code)
	}
	return "transport_error"
}
