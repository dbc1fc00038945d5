package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"coachbooking/internal/shared/config"
	"coachbooking/pkg/logger"
)

// Consumer runs the notification delivery workers
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	group  sarama.ConsumerGroup
	topic  string
	mailer Mailer
	logger *logger.Logger
	cancel context.CancelFunc
	done   chan struct{}
}

func NewKafkaConsumer(cfg *config.KafkaConfig, mailer Mailer, log *logger.Logger) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	group, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:  group,
		topic:  cfg.BookingsTopic,
		mailer: mailer,
		logger: log,
		done:   make(chan struct{}),
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			c.logger.WithError(err).Warn("notification consumer error")
		}
	}()

	go func() {
		defer close(c.done)
		handler := &deliveryHandler{mailer: c.mailer, logger: c.logger}
		for {
			// Consume returns when the group rebalances; loop until the
			// context is cancelled.
			if err := c.group.Consume(ctx, []string{c.topic}, handler); err != nil {
				c.logger.WithError(err).Error("notification consumer session failed")
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	c.logger.Info("notification consumer started", "topic", c.topic)
	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	<-c.done
	return c.group.Close()
}

// deliveryHandler implements sarama.ConsumerGroupHandler and delivers
// each booking notification as an email.
type deliveryHandler struct {
	mailer Mailer
	logger *logger.Logger
}

func (h *deliveryHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *deliveryHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *deliveryHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for message := range claim.Messages() {
		h.deliver(session.Context(), message)
		session.MarkMessage(message, "")
	}
	return nil
}

func (h *deliveryHandler) deliver(ctx context.Context, message *sarama.ConsumerMessage) {
	notification, err := FromJSON(message.Value)
	if err != nil {
		h.logger.WithError(err).Warn("dropping malformed notification",
			"partition", message.Partition, "offset", message.Offset)
		return
	}

	body, err := RenderBookingEmail(notification)
	if err != nil {
		h.logger.WithError(err).Error("failed to render notification email",
			"event", notification.Event)
		return
	}

	if err := h.mailer.Send(ctx, notification.Email, notification.Subject, body); err != nil {
		h.logger.WithError(err).Error("failed to send notification email",
			"to", notification.Email, "event", notification.Event)
		return
	}

	h.logger.Debug("notification delivered", "to", notification.Email, "event", notification.Event)
}
