package outbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"parcel-service/internal/entities"
)

// parcelEventMessage формат сообщения в топике доменных событий.
type parcelEventMessage struct {
	EventID         int64   `json:"event_id"`
	Kind            string  `json:"kind"`
	RecipientID     int64   `json:"recipient_id"`
	ParcelID        int64   `json:"parcel_id"`
	ParcelTitle     string  `json:"parcel_title"`
	Price           float64 `json:"price"`
	CounterpartName string  `json:"counterpart_name"`
}

// Relay публикует накопленные outbox-события в Kafka. Выборка и пометка
// отправленных идут в одной транзакции, SKIP LOCKED в выборке позволяет
// гонять несколько инстансов релея параллельно.
type Relay struct {
	repository Repository
	producer   Producer
	txManager  TxManager
	batchSize  int64
}

func NewRelay(repository Repository, producer Producer, txManager TxManager, batchSize int64) *Relay {
	return &Relay{
		repository: repository,
		producer:   producer,
		txManager:  txManager,
		batchSize:  batchSize,
	}
}

// RelayPending отправляет до batchSize неотправленных событий, возвращает
// количество опубликованных. Ошибка публикации обрывает батч: отправленные
// до нее события помечаются, остальные заберет следующий проход.
func (s *Relay) RelayPending(ctx context.Context) (int64, error) {
	var published int64
	var sendErr error

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		events, err := s.repository.ListUnsent(ctx, s.batchSize)
		if err != nil {
			return fmt.Errorf("list unsent events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		sentIDs := make([]int64, 0, len(events))
		for _, event := range events {
			if err := s.publish(event); err != nil {
				sendErr = fmt.Errorf("publish event %d: %w", event.ID, err)
				break
			}
			sentIDs = append(sentIDs, event.ID)
		}

		// коммитим пометку даже при оборванном батче, иначе уже
		// опубликованные события улетят второй раз
		if err := s.repository.MarkSent(ctx, sentIDs); err != nil {
			return fmt.Errorf("mark events sent: %w", err)
		}

		published = int64(len(sentIDs))
		return nil
	})
	if err != nil {
		return published, err
	}

	return published, sendErr
}

func (s *Relay) publish(event entities.ParcelEvent) error {
	payload, err := json.Marshal(parcelEventMessage{
		EventID:         event.ID,
		Kind:            event.Kind.String(),
		RecipientID:     event.RecipientID,
		ParcelID:        event.ParcelID,
		ParcelTitle:     event.ParcelTitle,
		Price:           event.Price,
		CounterpartName: event.CounterpartName,
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	// ключ — получатель, порядок событий аккаунта сохраняется в партиции
	return s.producer.Send(strconv.FormatInt(event.RecipientID, 10), payload)
}
