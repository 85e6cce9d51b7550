package models

import (
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
)

// Payment is one simulated gateway payment. TransactionRef is the unique
// idempotency token minted per attempt; the most recently written row for a
// booking is the canonical one.
type Payment struct {
	ID             int64                `json:"id"`
	GuestID        int64                `json:"guest_id"`
	BookingID      int64                `json:"booking_id"`
	Amount         float64              `json:"amount"`
	Currency       string               `json:"currency"`
	Method         string               `json:"payment_method"`
	Status         domain.PaymentStatus `json:"payment_status"`
	TransactionRef string               `json:"transaction_ref"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
