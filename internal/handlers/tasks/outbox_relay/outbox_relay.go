package outbox_relay

import (
	"context"
	"time"

	"parcel-service/pkg/logger"
)

type Service interface {
	RelayPending(ctx context.Context) (int64, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *OutboxRelay) TTL() time.Duration {
	return r.interval
}

func (r *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	published, err := r.service.RelayPending(ctxWithTimeout)

	if published > 0 {
		r.log.With(
			logger.NewField("published_events", published),
		).Info("outbox relay")
	}

	return err
}

func (r *OutboxRelay) Info() string {
	return "outbox relay"
}
