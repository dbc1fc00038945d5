package notifications

import (
	"context"

	"github.com/google/uuid"

	"coachbooking/pkg/logger"
)

// Service is the entry point the booking flow talks to. With Kafka
// enabled it publishes and lets the consumer workers deliver; without
// it the email goes out inline.
type Service interface {
	SendBookingNotification(ctx context.Context, userID uuid.UUID, email string, event string, data map[string]interface{}) error
	Close() error
}

type service struct {
	producer Producer
	mailer   Mailer
	logger   *logger.Logger
}

// NewService wires the delivery path. producer may be nil when Kafka is
// disabled; mailer must not be.
func NewService(producer Producer, mailer Mailer, log *logger.Logger) Service {
	return &service{
		producer: producer,
		mailer:   mailer,
		logger:   log,
	}
}

func (s *service) SendBookingNotification(ctx context.Context, userID uuid.UUID, email string, event string, data map[string]interface{}) error {
	notification := NewBookingNotification(event, userID, email, data)

	if s.producer != nil {
		return s.producer.Publish(ctx, notification)
	}

	body, err := RenderBookingEmail(notification)
	if err != nil {
		return err
	}
	return s.mailer.Send(ctx, email, notification.Subject, body)
}

func (s *service) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
