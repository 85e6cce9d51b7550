package services

import (
	"database/sql"
	"fmt"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/utils"
)

// CheckActionService executes checkin/checkout as one atomic unit spanning
// the booking row, the room row, and the append-only check log.
type CheckActionService struct {
	DB           *sql.DB
	BookingRepo  repositories.BookingRepository
	RoomRepo     repositories.RoomRepository
	CheckLogRepo repositories.CheckLogRepository
	RequestID    string
}

func (s CheckActionService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type CheckActionInput struct {
	BookingID  int64
	ActionBy   domain.ActorRole
	ActionType domain.CheckAction
	ActorID    int64
	Notes      string
	// Force skips the checked_in precondition on checkout; only the
	// reception checkout-with-payment flow sets it.
	Force bool
}

type CheckActionResult struct {
	BookingID  int64                `json:"bookingId"`
	Status     domain.BookingStatus `json:"status"`
	ActionType domain.CheckAction   `json:"actionType"`
}

// PerformCheckAction runs guard + log + booking update + room update inside a
// single transaction. The booking row is locked first, so a concurrent
// attempt on the same booking waits and then fails its guard against the
// committed status. Either all steps persist or none do.
func (s CheckActionService) PerformCheckAction(in CheckActionInput) (CheckActionResult, error) {
	if in.BookingID <= 0 {
		return CheckActionResult{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	if !in.ActionBy.IsValid() {
		return CheckActionResult{}, domain.ValidationError{Field: "action_by", Msg: "must be guest or reception"}
	}
	if !in.ActionType.IsValid() {
		return CheckActionResult{}, domain.ValidationError{Field: "action_type", Msg: "must be checkin or checkout"}
	}
	if in.ActionBy == domain.ActorReception && in.ActorID <= 0 {
		return CheckActionResult{}, domain.ValidationError{Field: "staff_id", Msg: "required for reception actions"}
	}

	tx, err := s.db().Begin()
	if err != nil {
		return CheckActionResult{}, domain.InternalError{Msg: "failed to start transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	status, roomID, err := s.BookingRepo.LockForAction(tx, in.BookingID)
	if err != nil {
		return CheckActionResult{}, err
	}

	next, err := status.NextFor(in.ActionType, in.Force)
	if err != nil {
		return CheckActionResult{}, err
	}

	if err := s.CheckLogRepo.Insert(tx, models.CheckLog{
		BookingID:  in.BookingID,
		ActionBy:   in.ActionBy,
		ActorID:    in.ActorID,
		ActionType: in.ActionType,
		Notes:      in.Notes,
	}); err != nil {
		return CheckActionResult{}, err
	}

	if err := s.BookingRepo.UpdateStatus(tx, in.BookingID, next); err != nil {
		return CheckActionResult{}, err
	}

	if in.ActionType == domain.ActionCheckout && roomID > 0 {
		if err := s.RoomRepo.UpdateStatus(tx, roomID, domain.RoomStatusFor(next)); err != nil {
			return CheckActionResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return CheckActionResult{}, domain.InternalError{Msg: "failed to commit transaction", Err: err}
	}

	utils.LogEvent(s.RequestID, "check", string(in.ActionType),
		fmt.Sprintf("booking_id=%d by=%s status=%s->%s force=%t", in.BookingID, in.ActionBy, status, next, in.Force))

	return CheckActionResult{
		BookingID:  in.BookingID,
		Status:     next,
		ActionType: in.ActionType,
	}, nil
}

// ListCheckLogs returns the booking's audit trail newest-first.
func (s CheckActionService) ListCheckLogs(bookingID int64) ([]models.CheckLog, error) {
	return s.CheckLogRepo.ListByBooking(bookingID)
}
