package models

import "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"

// ServiceRequest is read-only for billing; price is denormalized from the
// service catalog at read time.
type ServiceRequest struct {
	ID        int64                `json:"id"`
	GuestID   int64                `json:"guest_id"`
	BranchID  int64                `json:"branch_id"`
	ServiceID int64                `json:"service_id"`
	Price     float64              `json:"price"`
	Status    domain.ServiceStatus `json:"status"`
}
