package services

import (
	"sync"
	"testing"
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/notifier"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeNotifier struct {
	mu    sync.Mutex
	sent  []notifier.BookingEmail
	calls int
}

func (f *fakeNotifier) SendBookingSuccessEmail(email notifier.BookingEmail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.sent = append(f.sent, email)
	return nil
}

func newPaymentService(t *testing.T, n notifier.Notifier, delay time.Duration) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)

	svc := PaymentService{
		DB:          db,
		PaymentRepo: repositories.PaymentRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		RoomRepo:    repositories.RoomRepository{DB: db},
		GuestRepo:   repositories.GuestRepository{DB: db},
		CheckSvc: CheckActionService{
			DB:           db,
			BookingRepo:  repositories.BookingRepository{DB: db},
			RoomRepo:     repositories.RoomRepository{DB: db},
			CheckLogRepo: repositories.CheckLogRepository{DB: db},
		},
		Scheduler: SettlementScheduler{Delay: delay, Timeout: 5 * time.Second},
		Notifier:  n,
	}
	return svc, mock, func() { _ = db.Close() }
}

func expectBookingByID(mock sqlmock.Sqlmock, id, roomID, guestID int64, status string) {
	mock.ExpectQuery(`FROM bookings WHERE id=\? LIMIT 1`).WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "room_id", "branch_id", "guest_id", "guest_name", "guest_email",
			"guest_phone", "guests", "nights", "notes", "booking_status", "created_at",
		}).AddRow(id, roomID, int64(1), guestID, "Maya", "maya@example.com", "0700000000", 2, 3, "", status, time.Now()))
}

func TestSimulatePaymentPendingThenSettles(t *testing.T) {
	fake := &fakeNotifier{}
	svc, mock, closeDB := newPaymentService(t, fake, 10*time.Millisecond)
	defer closeDB()

	// Request phase: booking lookup, no existing payment, PENDING insert.
	expectBookingByID(mock, 10, 3, 1, "PENDING")
	mock.ExpectQuery(`FROM payments`).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "guest_id", "booking_id", "amount", "currency", "payment_method",
			"payment_status", "transaction_ref", "created_at", "updated_at",
		}))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(77, 1))

	// Deferred settlement: own transaction, row lock, three updates.
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_status", "room_id"}).AddRow("PENDING", int64(3)))
	mock.ExpectExec("UPDATE payments SET payment_status").
		WithArgs("SUCCESS", int64(77)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status").
		WithArgs("SUCCESS", int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs("Booked", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Notification lookups.
	mock.ExpectQuery("FROM guests").WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(int64(1), "Maya", "Perera", "maya@example.com"))
	mock.ExpectQuery("FROM rooms").WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "branch_id", "room_name", "room_type", "price", "capacity", "status"}).
			AddRow(int64(3), int64(1), "Deluxe 301", "deluxe", 5000.0, 2, "Booked"))

	payment, done, err := svc.SimulatePayment(SimulatePaymentInput{
		GuestID:   1,
		BookingID: 10,
		Amount:    5000,
		Method:    "CARD",
	})
	if err != nil {
		t.Fatalf("SimulatePayment error: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("response must carry PENDING before settlement, got %s", payment.Status)
	}
	if payment.ID != 77 || payment.TransactionRef == "" {
		t.Fatalf("unexpected payment %+v", payment)
	}

	<-done

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}

	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.calls != 1 {
		t.Fatalf("expected exactly one notification, got %d", fake.calls)
	}
	email := fake.sent[0]
	if email.BookingID != 10 || email.Amount != 5000 {
		t.Fatalf("notification carries wrong facts: %+v", email)
	}
	if email.To != "maya@example.com" || email.FirstName != "Maya" || email.RoomName != "Deluxe 301" {
		t.Fatalf("notification not built from guest/room lookups: %+v", email)
	}
}

func TestSimulatePaymentReusesExistingRow(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t, &fakeNotifier{}, time.Hour)
	defer closeDB()

	expectBookingByID(mock, 10, 3, 1, "SUCCESS")
	mock.ExpectQuery(`FROM payments`).WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "guest_id", "booking_id", "amount", "currency", "payment_method",
			"payment_status", "transaction_ref", "created_at", "updated_at",
		}).AddRow(int64(5), int64(1), int64(10), 4000.0, "USD", "CASH", "SUCCESS", "TXN-existing", time.Now(), time.Now()))
	mock.ExpectExec("SET amount").
		WithArgs(6000.0, "CARD", "PENDING", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	payment, _, err := svc.SimulatePayment(SimulatePaymentInput{
		GuestID:   1,
		BookingID: 10,
		Amount:    6000,
		Method:    "CARD",
	})
	if err != nil {
		t.Fatalf("SimulatePayment error: %v", err)
	}
	if payment.ID != 5 {
		t.Fatalf("must reuse the canonical payment row, got id=%d", payment.ID)
	}
	if payment.TransactionRef != "TXN-existing" {
		t.Fatalf("idempotency token must survive the upsert, got %s", payment.TransactionRef)
	}
	if payment.Amount != 6000 || payment.Method != "CARD" {
		t.Fatalf("amount/method not rewritten: %+v", payment)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("a duplicate insert slipped through: %v", err)
	}
}

func TestSimulateReceptionCheckoutPaymentForcesCheckout(t *testing.T) {
	fake := &fakeNotifier{}
	svc, mock, closeDB := newPaymentService(t, fake, 5*time.Millisecond)
	defer closeDB()

	expectBookingByID(mock, 12, 4, 2, "checked_in")
	mock.ExpectQuery(`FROM payments`).WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "guest_id", "booking_id", "amount", "currency", "payment_method",
			"payment_status", "transaction_ref", "created_at", "updated_at",
		}))
	mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlmock.NewResult(88, 1))

	// Settlement transaction: booking already checked_in, so the status
	// holds and the room stays Booked for now.
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_status", "room_id"}).AddRow("checked_in", int64(4)))
	mock.ExpectExec("UPDATE payments SET payment_status").
		WithArgs("SUCCESS", int64(88)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status").
		WithArgs("checked_in", int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs("Booked", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Forced checkout transaction.
	mock.ExpectBegin()
	mock.ExpectQuery("FOR UPDATE").WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_status", "room_id"}).AddRow("checked_in", int64(4)))
	mock.ExpectExec("INSERT INTO check_logs").WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec("UPDATE bookings SET booking_status").
		WithArgs("checked_out", int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE rooms SET status").
		WithArgs("Available", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectQuery("FROM guests").WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "first_name", "last_name", "email"}).
			AddRow(int64(2), "Nuwan", "Silva", "nuwan@example.com"))
	mock.ExpectQuery("FROM rooms").WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "branch_id", "room_name", "room_type", "price", "capacity", "status"}).
			AddRow(int64(4), int64(1), "Suite 104", "suite", 9000.0, 3, "Available"))

	payment, done, err := svc.SimulateReceptionCheckoutPayment(SimulatePaymentInput{
		GuestID:   2,
		BookingID: 12,
		Amount:    9000,
		Method:    "CARD",
	}, 21)
	if err != nil {
		t.Fatalf("SimulateReceptionCheckoutPayment error: %v", err)
	}
	if payment.Status != domain.PaymentPending {
		t.Fatalf("response must carry PENDING, got %s", payment.Status)
	}

	<-done

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
	fake.mu.Lock()
	defer fake.mu.Unlock()
	if fake.calls != 1 {
		t.Fatalf("expected one notification after forced checkout, got %d", fake.calls)
	}
}

func TestSimulatePaymentValidation(t *testing.T) {
	svc, mock, closeDB := newPaymentService(t, &fakeNotifier{}, time.Hour)
	defer closeDB()

	cases := []SimulatePaymentInput{
		{GuestID: 0, BookingID: 10, Amount: 100, Method: "CARD"},
		{GuestID: 1, BookingID: 0, Amount: 100, Method: "CARD"},
		{GuestID: 1, BookingID: 10, Amount: 0, Method: "CARD"},
		{GuestID: 1, BookingID: 10, Amount: 100, Method: "  "},
	}
	for _, in := range cases {
		if _, _, err := svc.SimulatePayment(in); !domain.IsValidation(err) {
			t.Fatalf("input %+v should fail validation, got %v", in, err)
		}
	}

	// Rejected before any mutation.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("validation must not touch the database: %v", err)
	}
}
