//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	geocoderGateway "parcel-service/internal/gateway/geocoder"
	pushGateway "parcel-service/internal/gateway/push"
	account_get "parcel-service/internal/handlers/rest/account_get"
	account_post "parcel-service/internal/handlers/rest/account_post"
	account_put "parcel-service/internal/handlers/rest/account_put"
	notifications_get "parcel-service/internal/handlers/rest/notifications_get"
	parcel_assign_post "parcel-service/internal/handlers/rest/parcel_assign_post"
	parcel_cancel_post "parcel-service/internal/handlers/rest/parcel_cancel_post"
	parcel_delete "parcel-service/internal/handlers/rest/parcel_delete"
	parcel_get "parcel-service/internal/handlers/rest/parcel_get"
	parcel_post "parcel-service/internal/handlers/rest/parcel_post"
	parcel_request_delete "parcel-service/internal/handlers/rest/parcel_request_delete"
	parcel_requests_post "parcel-service/internal/handlers/rest/parcel_requests_post"
	parcel_review_post "parcel-service/internal/handlers/rest/parcel_review_post"
	parcel_status_put "parcel-service/internal/handlers/rest/parcel_status_put"
	parcel_unassign_post "parcel-service/internal/handlers/rest/parcel_unassign_post"
	parcels_get "parcel-service/internal/handlers/rest/parcels_get"
	"parcel-service/internal/handlers/tasks/outbox_relay"
	"parcel-service/internal/pkg/config"
	"parcel-service/internal/pkg/factory/event_handle"
	"parcel-service/internal/pkg/kafka"

	accountRepo "parcel-service/internal/repository/account"
	notificationRepo "parcel-service/internal/repository/notification"
	outboxRepo "parcel-service/internal/repository/outbox"
	parcelRepo "parcel-service/internal/repository/parcel"
	accountService "parcel-service/internal/service/account"
	notificationService "parcel-service/internal/service/notification"
	outboxService "parcel-service/internal/service/outbox"
	parcelService "parcel-service/internal/service/parcel"

	"parcel-service/pkg/background"
	"parcel-service/pkg/logger"
	"parcel-service/pkg/querier"
	"parcel-service/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideRelayInterval,

		provideParcelRepository,
		provideAccountRepository,
		provideNotificationRepository,
		provideOutboxRepository,

		provideGeocoderGateway,
		providePushGateway,
		event_handle.NewEventHandlerFactory,

		provideServiceAccount,
		provideServiceParcel,
		provideServiceNotification,
		provideServiceRelay,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Parcel)),
		wire.Bind(new(ServiceAccount), new(*accountService.Account)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.AccountService), new(*accountService.Account)),
		wire.Bind(new(parcelService.Geocoder), new(*geocoderGateway.GeocoderGateway)),
		wire.Bind(new(parcelService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(accountService.Repository), new(*accountRepo.Repository)),
		wire.Bind(new(accountService.ParcelStats), new(*parcelRepo.Repository)),
		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.Push), new(*pushGateway.PushGateway)),
		wire.Bind(new(notificationService.HandlerFactory), new(*event_handle.EventHandlerFactory)),
		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Producer), new(*kafka.Producer)),

		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),
		wire.Bind(new(accountService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Relay)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notification-dispatch)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideNotificationRepository,
		providePushGateway,
		event_handle.NewEventHandlerFactory,

		provideServiceNotification,

		wire.Bind(new(notificationService.Repository), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.Push), new(*pushGateway.PushGateway)),
		wire.Bind(new(notificationService.HandlerFactory), new(*event_handle.EventHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideGeocoderGateway(cfg *config.Config) *geocoderGateway.GeocoderGateway {
	client := &http.Client{Timeout: cfg.Geocoder.RequestTimeout}
	return geocoderGateway.New(client, cfg.Geocoder.BaseURL)
}

func providePushGateway(cfg *config.Config) *pushGateway.PushGateway {
	client := &http.Client{Timeout: cfg.Push.RequestTimeout}
	return pushGateway.New(client, cfg.Push.BaseURL, cfg.Push.APIKey)
}

func provideServiceAccount(
	repository accountService.Repository,
	parcelStats accountService.ParcelStats,
	txManager accountService.TxManager,
) *accountService.Account {
	return accountService.New(repository, parcelStats, txManager)
}

func provideServiceParcel(
	repository parcelService.Repository,
	accounts parcelService.AccountService,
	geocoder parcelService.Geocoder,
	outboxRepository parcelService.Outbox,
	txManager parcelService.TxManager,
) *parcelService.Parcel {
	return parcelService.New(
		repository,
		accounts,
		geocoder,
		outboxRepository,
		txManager,
	)
}

func provideServiceNotification(
	repository notificationService.Repository,
	push notificationService.Push,
	factory notificationService.HandlerFactory,
) *notificationService.Notification {
	return notificationService.New(repository, push, factory)
}

func provideServiceRelay(
	repository outboxService.Repository,
	producer outboxService.Producer,
	txManager outboxService.TxManager,
	cfg *config.Config,
) *outboxService.Relay {
	return outboxService.NewRelay(repository, producer, txManager, int64(cfg.Tasks.OutboxRelayBatch))
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
