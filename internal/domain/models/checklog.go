package models

import (
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
)

// CheckLog is an append-only audit entry; rows are never updated or deleted.
type CheckLog struct {
	ID         int64              `json:"id"`
	BookingID  int64              `json:"booking_id"`
	ActionBy   domain.ActorRole   `json:"action_by"`
	ActorID    int64              `json:"actor_id,omitempty"`
	ActionType domain.CheckAction `json:"action_type"`
	Notes      string             `json:"notes,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}
