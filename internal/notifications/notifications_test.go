package notifications

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNotificationRoundTrip(t *testing.T) {
	n := NewBookingNotification(EventBookingConfirmed, uuid.New(), "khach@example.com", map[string]interface{}{
		"booking_ref": "CB-1A2B3C4D",
		"seats":       "A01, A02",
		"total_price": "500.000đ",
	})

	if n.Subject != "Your booking is confirmed" {
		t.Errorf("subject = %q", n.Subject)
	}
	if n.PartitionKey() != "khach@example.com" {
		t.Errorf("partition key = %q, want recipient email", n.PartitionKey())
	}

	raw, err := n.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}
	decoded, err := FromJSON(raw)
	if err != nil {
		t.Fatalf("FromJSON: %v", err)
	}
	if decoded.ID != n.ID || decoded.Event != n.Event || decoded.Email != n.Email {
		t.Error("decoded notification does not match original")
	}
	if decoded.Data["booking_ref"] != "CB-1A2B3C4D" {
		t.Errorf("booking_ref = %v", decoded.Data["booking_ref"])
	}
}

func TestFromJSONRejectsGarbage(t *testing.T) {
	if _, err := FromJSON([]byte("{not json")); err == nil {
		t.Error("expected error for malformed payload")
	}
}

func TestSubjectForUnknownEvent(t *testing.T) {
	n := NewBookingNotification("SOMETHING_ELSE", uuid.New(), "a@b.c", nil)
	if n.Subject != "Booking update" {
		t.Errorf("subject = %q", n.Subject)
	}
}

func TestRenderBookingEmail(t *testing.T) {
	n := NewBookingNotification(EventBookingCancelled, uuid.New(), "khach@example.com", map[string]interface{}{
		"booking_ref": "CB-DEADBEEF",
		"total_price": "350.000đ",
	})

	body, err := RenderBookingEmail(n)
	if err != nil {
		t.Fatalf("RenderBookingEmail: %v", err)
	}
	for _, want := range []string{"Your booking has been cancelled", "CB-DEADBEEF", "350.000đ"} {
		if !strings.Contains(body, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
	if strings.Contains(body, "Seats:") {
		t.Error("seats line should be omitted when no seats are present")
	}
}
