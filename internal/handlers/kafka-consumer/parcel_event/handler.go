package parcel_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcel-service/internal/entities"
	notificationservice "parcel-service/internal/service/notification"
	"parcel-service/pkg/logger"
)

type parcelEventMessage struct {
	EventID         int64   `json:"event_id"`
	Kind            string  `json:"kind"`
	RecipientID     int64   `json:"recipient_id"`
	ParcelID        int64   `json:"parcel_id"`
	ParcelTitle     string  `json:"parcel_title"`
	Price           float64 `json:"price"`
	CounterpartName string  `json:"counterpart_name"`
}

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("parcel.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("parcel.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var eventMessage parcelEventMessage
	err := json.Unmarshal(message.Value, &eventMessage)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("parcel.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event", eventMessage.EventID),
		logger.NewField("kind", eventMessage.Kind),
		logger.NewField("recipient", eventMessage.RecipientID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("parcel.events processing")

	event := entities.ParcelEvent{
		ID:              eventMessage.EventID,
		Kind:            entities.ParcelEventKind(eventMessage.Kind),
		RecipientID:     eventMessage.RecipientID,
		ParcelID:        eventMessage.ParcelID,
		ParcelTitle:     eventMessage.ParcelTitle,
		Price:           eventMessage.Price,
		CounterpartName: eventMessage.CounterpartName,
	}

	notification, err := h.notificationService.ProcessParcelEvent(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrUndefinedEventKind):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler unknown event kind")

		case errors.Is(err, notificationservice.ErrPushUnavailable):
			// уведомление уже сохранено, потеряна только push-доставка
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler push delivery failed")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("parcel.events handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("event", eventMessage.EventID),
		logger.NewField("notification", notification.ID),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("parcel.events: processed")

	sess.MarkMessage(message, "")
	return false
}
