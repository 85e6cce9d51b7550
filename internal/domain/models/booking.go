package models

import (
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
)

// Booking captures one guest stay. Status only moves forward; the row is
// never deleted, history lives in check_logs.
type Booking struct {
	ID         int64                `json:"id"`
	RoomID     int64                `json:"room_id"`
	BranchID   int64                `json:"branch_id"`
	GuestID    int64                `json:"guest_id"`
	GuestName  string               `json:"guest_name"`
	GuestEmail string               `json:"guest_email"`
	GuestPhone string               `json:"guest_phone"`
	Guests     int                  `json:"guests"`
	Nights     int                  `json:"nights"`
	Notes      string               `json:"notes"`
	Status     domain.BookingStatus `json:"booking_status"`
	CreatedAt  time.Time            `json:"created_at"`
}

// BookingInput is the intake payload for a new booking.
type BookingInput struct {
	RoomID     int64  `json:"room_id"`
	BranchID   int64  `json:"branch_id"`
	GuestID    int64  `json:"guest_id"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
	Guests     int    `json:"guests"`
	Nights     int    `json:"nights"`
	Notes      string `json:"notes"`
}
