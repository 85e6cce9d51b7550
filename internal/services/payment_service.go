package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/notifier"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/utils"

	"github.com/google/uuid"
)

const defaultCurrency = "USD"

// PaymentService simulates gateway settlement. The request path only writes
// the PENDING payment; everything that depends on settlement (payment flip,
// booking transition, room status, email) happens on the scheduler's
// detached unit of work with its own transaction scope.
type PaymentService struct {
	DB          *sql.DB
	PaymentRepo repositories.PaymentRepository
	BookingRepo repositories.BookingRepository
	RoomRepo    repositories.RoomRepository
	GuestRepo   repositories.GuestRepository
	CheckSvc    CheckActionService
	Scheduler   SettlementScheduler
	Notifier    notifier.Notifier
	RequestID   string
}

func (s PaymentService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

type SimulatePaymentInput struct {
	GuestID   int64
	BookingID int64
	Amount    float64
	Method    string
	Currency  string
}

func (in SimulatePaymentInput) validate() error {
	if in.GuestID <= 0 {
		return domain.ValidationError{Field: "guest_id", Msg: "must be positive"}
	}
	if in.BookingID <= 0 {
		return domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	if in.Amount <= 0 {
		return domain.ValidationError{Field: "amount", Msg: "must be positive"}
	}
	if strings.TrimSpace(in.Method) == "" {
		return domain.ValidationError{Field: "payment_method", Msg: "required"}
	}
	return nil
}

// SimulatePayment records a PENDING payment and returns it immediately; the
// settlement runs after the simulated gateway delay. The returned channel
// closes once the deferred work finishes (callers other than tests ignore it).
func (s PaymentService) SimulatePayment(in SimulatePaymentInput) (models.Payment, <-chan struct{}, error) {
	payment, err := s.preparePayment(in)
	if err != nil {
		return models.Payment{}, nil, err
	}

	done := s.Scheduler.Schedule(s.RequestID, "simulate_payment", func(ctx context.Context) error {
		roomID, err := s.settle(ctx, payment)
		if err != nil {
			return err
		}
		s.notifySuccess(payment, roomID)
		return nil
	})

	return payment, done, nil
}

// SimulateReceptionCheckoutPayment composes settlement with a forced
// checkout; reception uses it when the guest is departing and checkout is
// payment-gated.
func (s PaymentService) SimulateReceptionCheckoutPayment(in SimulatePaymentInput, receptionistID int64) (models.Payment, <-chan struct{}, error) {
	if receptionistID <= 0 {
		return models.Payment{}, nil, domain.ValidationError{Field: "receptionist_id", Msg: "must be positive"}
	}
	payment, err := s.preparePayment(in)
	if err != nil {
		return models.Payment{}, nil, err
	}

	done := s.Scheduler.Schedule(s.RequestID, "reception_checkout_payment", func(ctx context.Context) error {
		roomID, err := s.settle(ctx, payment)
		if err != nil {
			return err
		}
		checkSvc := s.CheckSvc
		checkSvc.RequestID = s.RequestID
		if _, err := checkSvc.PerformCheckAction(CheckActionInput{
			BookingID:  payment.BookingID,
			ActionBy:   domain.ActorReception,
			ActionType: domain.ActionCheckout,
			ActorID:    receptionistID,
			Notes:      "checkout settled at reception",
			Force:      true,
		}); err != nil {
			return fmt.Errorf("forced checkout after settlement: %w", err)
		}
		s.notifySuccess(payment, roomID)
		return nil
	})

	return payment, done, nil
}

// preparePayment upserts the canonical payment row for the booking: an
// existing row gets its amount/method rewritten instead of a duplicate
// insert; a fresh row is minted with a unique transaction reference.
func (s PaymentService) preparePayment(in SimulatePaymentInput) (models.Payment, error) {
	if err := in.validate(); err != nil {
		return models.Payment{}, err
	}
	if _, err := s.BookingRepo.GetByID(in.BookingID); err != nil {
		return models.Payment{}, err
	}

	existing, err := s.PaymentRepo.GetByBookingID(in.BookingID)
	if err != nil {
		return models.Payment{}, err
	}
	if existing.ID != 0 {
		if err := s.PaymentRepo.UpdateAmountMethod(existing.ID, in.Amount, in.Method); err != nil {
			return models.Payment{}, err
		}
		existing.Amount = in.Amount
		existing.Method = in.Method
		existing.Status = domain.PaymentPending
		utils.LogEvent(s.RequestID, "payment", "upsert",
			fmt.Sprintf("booking_id=%d reused payment_id=%d ref=%s", in.BookingID, existing.ID, existing.TransactionRef))
		return existing, nil
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	payment := models.Payment{
		GuestID:        in.GuestID,
		BookingID:      in.BookingID,
		Amount:         in.Amount,
		Currency:       currency,
		Method:         in.Method,
		Status:         domain.PaymentPending,
		TransactionRef: "TXN-" + uuid.NewString(),
	}
	id, err := s.PaymentRepo.Insert(payment)
	if err != nil {
		return models.Payment{}, err
	}
	payment.ID = id
	utils.LogEvent(s.RequestID, "payment", "create",
		fmt.Sprintf("booking_id=%d payment_id=%d ref=%s", in.BookingID, id, payment.TransactionRef))
	return payment, nil
}

// settle flips payment/booking/room inside one row-locked transaction and
// returns the room backing the booking.
func (s PaymentService) settle(ctx context.Context, payment models.Payment) (int64, error) {
	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to start settlement transaction", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	status, roomID, err := s.BookingRepo.LockForAction(tx, payment.BookingID)
	if err != nil {
		return 0, err
	}
	next := status.AfterSettlement()

	if err := s.PaymentRepo.UpdateStatus(tx, payment.ID, domain.PaymentSuccess); err != nil {
		return 0, err
	}
	if err := s.BookingRepo.UpdateStatus(tx, payment.BookingID, next); err != nil {
		return 0, err
	}
	if roomID > 0 {
		if err := s.RoomRepo.UpdateStatus(tx, roomID, domain.RoomStatusFor(next)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, domain.InternalError{Msg: "failed to commit settlement", Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "settled",
		fmt.Sprintf("booking_id=%d payment_id=%d status=%s->%s", payment.BookingID, payment.ID, status, next))
	return roomID, nil
}

// notifySuccess is fire-and-forget; a lookup or send failure never undoes
// the settlement that already committed.
func (s PaymentService) notifySuccess(payment models.Payment, roomID int64) {
	if s.Notifier == nil {
		return
	}
	guest, err := s.GuestRepo.GetByID(payment.GuestID)
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "notify", "guest lookup failed: "+err.Error())
		return
	}
	roomName := ""
	if roomID > 0 {
		if room, err := s.RoomRepo.GetByID(roomID); err == nil {
			roomName = room.Name
		}
	}
	err = s.Notifier.SendBookingSuccessEmail(notifier.BookingEmail{
		To:        guest.Email,
		FirstName: guest.FirstName,
		BookingID: payment.BookingID,
		Amount:    payment.Amount,
		RoomName:  roomName,
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "notify", "send failed: "+err.Error())
	}
}
