// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
	"parcel-service/internal/gateway/geocoder"
	"parcel-service/internal/gateway/push"
	"parcel-service/internal/handlers/rest/account_get"
	"parcel-service/internal/handlers/rest/account_post"
	"parcel-service/internal/handlers/rest/account_put"
	"parcel-service/internal/handlers/rest/notifications_get"
	"parcel-service/internal/handlers/rest/parcel_assign_post"
	"parcel-service/internal/handlers/rest/parcel_cancel_post"
	"parcel-service/internal/handlers/rest/parcel_delete"
	"parcel-service/internal/handlers/rest/parcel_get"
	"parcel-service/internal/handlers/rest/parcel_post"
	"parcel-service/internal/handlers/rest/parcel_request_delete"
	"parcel-service/internal/handlers/rest/parcel_requests_post"
	"parcel-service/internal/handlers/rest/parcel_review_post"
	"parcel-service/internal/handlers/rest/parcel_status_put"
	"parcel-service/internal/handlers/rest/parcel_unassign_post"
	"parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/tasks/outbox_relay"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/factory/event_handle"
	"parcel-service/internal/pkg/kafka"
	"parcel-service/internal/repository/account"
	notification2 "parcel-service/internal/repository/notification"
	"parcel-service/internal/repository/outbox"
	"parcel-service/internal/repository/parcel"
	account2 "parcel-service/internal/service/account"
	"parcel-service/internal/service/notification"
	outbox2 "parcel-service/internal/service/outbox"
	parcel2 "parcel-service/internal/service/parcel"
	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer *kafka.Producer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideParcelRepository(querier)
	accountRepository := provideAccountRepository(querier)
	manager := provideTxManager(pool)
	account := provideServiceAccount(accountRepository, repository, manager)
	geocoderGateway := provideGeocoderGateway(cfg)
	outboxRepository := provideOutboxRepository(querier)
	parcel := provideServiceParcel(repository, account, geocoderGateway, outboxRepository, manager)
	notificationRepository := provideNotificationRepository(querier)
	pushGateway := providePushGateway(cfg)
	eventHandlerFactory := event_handle.NewEventHandlerFactory()
	notification := provideServiceNotification(notificationRepository, pushGateway, eventHandlerFactory)
	relay := provideServiceRelay(outboxRepository, producer, manager, cfg)
	relayInterval := provideRelayInterval(cfg)
	outboxRelay := provideOutboxRelayTask(log, relay, relayInterval)
	v := provideTaskList(outboxRelay)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceParcel:       parcel,
		ServiceAccount:      account,
		ServiceNotification: notification,
		BackgroundWorkers:   worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notification-dispatch)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideNotificationRepository(querier)
	pushGateway := providePushGateway(cfg)
	eventHandlerFactory := event_handle.NewEventHandlerFactory()
	notification := provideServiceNotification(repository, pushGateway, eventHandlerFactory)
	kafkaWorkerApp := &KafkaWorkerApp{
		NotificationService: notification,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	RelayInterval time.Duration
)

type Application struct {
	ServiceParcel       ServiceParcel
	ServiceAccount      ServiceAccount
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcels_get.Service
	parcel_delete.Service
	parcel_requests_post.Service
	parcel_request_delete.Service
	parcel_assign_post.Service
	parcel_unassign_post.Service
	parcel_cancel_post.Service
	parcel_status_put.Service
	parcel_review_post.Service
}

type ServiceAccount interface {
	account_post.Service
	account_get.Service
	account_put.Service
}

type ServiceNotification interface {
	notifications_get.Service
}

type KafkaWorkerApp struct {
	NotificationService *notification.Notification
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier2 *querier.Querier) *parcel.Repository {
	return parcel.New(querier2)
}

func provideAccountRepository(querier2 *querier.Querier) *account.Repository {
	return account.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification2.Repository {
	return notification2.New(querier2)
}

func provideOutboxRepository(querier2 *querier.Querier) *outbox.Repository {
	return outbox.New(querier2)
}

func provideGeocoderGateway(cfg *config.Config) *geocoder.GeocoderGateway {
	client := &http.Client{Timeout: cfg.Geocoder.RequestTimeout}
	return geocoder.New(client, cfg.Geocoder.BaseURL)
}

func providePushGateway(cfg *config.Config) *push.PushGateway {
	client := &http.Client{Timeout: cfg.Push.RequestTimeout}
	return push.New(client, cfg.Push.BaseURL, cfg.Push.APIKey)
}

func provideServiceAccount(
	repository account2.Repository,
	parcelStats account2.ParcelStats,
	txManager account2.TxManager,
) *account2.Account {
	return account2.New(repository, parcelStats, txManager)
}

func provideServiceParcel(
	repository parcel2.Repository,
	accounts parcel2.AccountService, geocoder2 parcel2.Geocoder,

	outboxRepository parcel2.Outbox,
	txManager parcel2.TxManager,
) *parcel2.Parcel {
	return parcel2.New(
		repository,
		accounts, geocoder2, outboxRepository,
		txManager,
	)
}

func provideServiceNotification(
	repository notification.Repository, push2 notification.Push,

	factory notification.HandlerFactory,
) *notification.Notification {
	return notification.New(repository, push2, factory)
}

func provideServiceRelay(
	repository outbox2.Repository,
	producer outbox2.Producer,
	txManager outbox2.TxManager,
	cfg *config.Config,
) *outbox2.Relay {
	return outbox2.NewRelay(repository, producer, txManager, int64(cfg.Tasks.OutboxRelayBatch))
}

func provideRelayInterval(cfg *config.Config) RelayInterval {
	return RelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxRelayTask(
	log logger.Logger,
	relay outbox_relay.Service,
	interval RelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, relay, time.Duration(interval))
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
