package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"coachbooking/internal/shared/config"
	"coachbooking/pkg/logger"
)

// Producer publishes booking notifications to Kafka
type Producer interface {
	Publish(ctx context.Context, notification *BookingNotification) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	logger   *logger.Logger
}

// NewKafkaProducer builds an idempotent sync producer. Messages are
// keyed by recipient so per-customer ordering survives partitioning.
func NewKafkaProducer(cfg *config.KafkaConfig, log *logger.Logger) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Compression = sarama.CompressionSnappy
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.BookingsTopic,
		logger:   log,
	}, nil
}

func (p *kafkaProducer) Publish(ctx context.Context, notification *BookingNotification) error {
	payload, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(notification.PartitionKey()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: notification.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("event"), Value: []byte(notification.Event)},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}

	p.logger.Debug("notification published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"event", notification.Event)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}
