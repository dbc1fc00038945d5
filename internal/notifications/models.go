package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Booking lifecycle events the platform emails customers about
const (
	EventBookingConfirmed = "BOOKING_CONFIRMED"
	EventBookingCancelled = "BOOKING_CANCELLED"
)

// BookingNotification is the message published to Kafka for every
// booking lifecycle event. The consumer turns it into an email.
type BookingNotification struct {
	ID        uuid.UUID              `json:"id"`
	Event     string                 `json:"event"`
	UserID    uuid.UUID              `json:"user_id"`
	Email     string                 `json:"email"`
	Subject   string                 `json:"subject"`
	Data      map[string]interface{} `json:"data"`
	Attempts  int                    `json:"attempts"`
	CreatedAt time.Time              `json:"created_at"`
}

func NewBookingNotification(event string, userID uuid.UUID, email string, data map[string]interface{}) *BookingNotification {
	return &BookingNotification{
		ID:        uuid.New(),
		Event:     event,
		UserID:    userID,
		Email:     email,
		Subject:   subjectFor(event),
		Data:      data,
		CreatedAt: time.Now(),
	}
}

// PartitionKey keeps all notifications for one recipient on the same
// partition so they are delivered in order.
func (n *BookingNotification) PartitionKey() string {
	return n.Email
}

func (n *BookingNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

func FromJSON(data []byte) (*BookingNotification, error) {
	var n BookingNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func subjectFor(event string) string {
	switch event {
	case EventBookingConfirmed:
		return "Your booking is confirmed"
	case EventBookingCancelled:
		return "Your booking has been cancelled"
	default:
		return "Booking update"
	}
}
