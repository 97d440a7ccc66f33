package kafka

import (
	"fmt"

	"github.com/IBM/sarama"
	"parcel-service/internal/pkg/config"
	"parcel-service/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	// sync producer: подтверждение от всех реплик, ошибки наружу
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	producerLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("topic", cfg.Topic),
	)

	return &Producer{
		log:      producerLog,
		producer: producer,
		topic:    cfg.Topic,
	}, nil
}

// Send публикует сообщение с ключом партиционирования. Ключ — id получателя,
// события одного аккаунта уходят в одну партицию и сохраняют порядок.
func (p *Producer) Send(key string, value []byte) error {
	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	p.log.With(
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("message published")

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
