package models

import "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"

// Room status is shared-mutable between the settlement orchestrator and the
// check-action manager; both write it through domain.RoomStatusFor.
type Room struct {
	ID       int64             `json:"id"`
	BranchID int64             `json:"branch_id"`
	Name     string            `json:"room_name"`
	Type     string            `json:"room_type"`
	Price    float64           `json:"price"`
	Capacity int               `json:"capacity"`
	Status   domain.RoomStatus `json:"status"`
}
