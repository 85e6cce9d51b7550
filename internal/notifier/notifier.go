package notifier

import (
	"fmt"
	"log"
)

// BookingEmail carries the facts the mail template needs. Rendering happens
// in the external notification service; this side only dispatches.
type BookingEmail struct {
	To        string  `json:"to"`
	FirstName string  `json:"firstName"`
	BookingID int64   `json:"bookingId"`
	Amount    float64 `json:"amount"`
	RoomName  string  `json:"roomName"`
}

// Notifier is fire-and-forget: a failed send never rolls back settlement.
type Notifier interface {
	SendBookingSuccessEmail(email BookingEmail) error
}

// LogNotifier writes the notification to the process log. Used in local
// development and whenever no message broker is configured.
type LogNotifier struct{}

func NewLog() LogNotifier {
	return LogNotifier{}
}

func (LogNotifier) SendBookingSuccessEmail(email BookingEmail) error {
	log.Printf("[NOTIFY] to=%s amount=%.2f :: %s", email.To, email.Amount, GreetingLine(email))
	return nil
}

// GreetingLine is the plain-text preview of the email; the real template
// lives in the external notification service.
func GreetingLine(email BookingEmail) string {
	return fmt.Sprintf("Hi %s, booking #%d is confirmed for room %s.", email.FirstName, email.BookingID, email.RoomName)
}
