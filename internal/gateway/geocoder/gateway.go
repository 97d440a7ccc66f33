package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"parcel-service/internal/entities"
	"parcel-service/internal/gateway"
	retrierconfig "parcel-service/pkg/retrier"
	"parcel-service/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "geocoder"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type resolveResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("geocoder responded %d", e.code)
}

// GeocoderGateway внешний HTTP-коллаборатор геокодирования, вызывается только
// при создании посылки.
type GeocoderGateway struct {
	client  httpClient
	baseURL string
	retrier retrier
}

func New(client httpClient, baseURL string) *GeocoderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &GeocoderGateway{
		client:  client,
		baseURL: baseURL,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *GeocoderGateway) Resolve(ctx context.Context, address string) (*entities.Location, error) {
	requestURL := g.baseURL + "/geocode?" + url.Values{"address": {address}}.Encode()

	var resolved resolveResponse

	err := g.executeWithMetrics(ctx, "Resolve", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return err
		}

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return &statusError{code: resp.StatusCode}
		}

		return json.NewDecoder(resp.Body).Decode(&resolved)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway geocoder, resolve %q: %w", address, err)
	}

	return &entities.Location{
		Address:   address,
		Latitude:  resolved.Latitude,
		Longitude: resolved.Longitude,
	}, nil
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

func (g *GeocoderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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
