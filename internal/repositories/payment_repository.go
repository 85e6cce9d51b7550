package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	intdb "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/db"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentColumns = `id,
	       COALESCE(guest_id,0),
	       COALESCE(booking_id,0),
	       COALESCE(amount,0),
	       COALESCE(currency,''),
	       COALESCE(payment_method,''),
	       COALESCE(payment_status,''),
	       COALESCE(transaction_ref,''),
	       created_at,
	       updated_at`

func scanPayment(row *sql.Row) (models.Payment, error) {
	var p models.Payment
	err := row.Scan(
		&p.ID,
		&p.GuestID,
		&p.BookingID,
		&p.Amount,
		&p.Currency,
		&p.Method,
		&p.Status,
		&p.TransactionRef,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return models.Payment{}, err
	}
	return p, nil
}

// GetByID fetches a payment by primary key.
func (r PaymentRepository) GetByID(id int64) (models.Payment, error) {
	row := r.db().QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE id=? LIMIT 1`, id)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
	}
	return p, err
}

// GetByBookingID returns the most recent payment for a booking. A zero-ID
// payment with nil error means no payment exists yet.
func (r PaymentRepository) GetByBookingID(bookingID int64) (models.Payment, error) {
	if bookingID <= 0 {
		return models.Payment{}, domain.ValidationError{Field: "booking_id", Msg: "must be positive"}
	}
	row := r.db().QueryRow(`SELECT `+paymentColumns+`
		FROM payments
		WHERE booking_id=?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, bookingID)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, nil
	}
	return p, err
}

// Insert stores a new PENDING payment and returns its id.
func (r PaymentRepository) Insert(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments
			(guest_id, booking_id, amount, currency, payment_method,
			 payment_status, transaction_ref, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		p.GuestID,
		p.BookingID,
		p.Amount,
		p.Currency,
		p.Method,
		string(p.Status),
		p.TransactionRef,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateAmountMethod rewrites amount/method on the existing payment row
// instead of inserting a duplicate for the same booking.
func (r PaymentRepository) UpdateAmountMethod(id int64, amount float64, method string) error {
	_, err := r.db().Exec(`
		UPDATE payments
		SET amount=?, payment_method=?, payment_status=?, updated_at=NOW()
		WHERE id=?`,
		amount, method, string(domain.PaymentPending), id)
	return err
}

// UpdateStatus flips payment_status through any Execer (tx or db).
func (r PaymentRepository) UpdateStatus(q intdb.Execer, id int64, status domain.PaymentStatus) error {
	_, err := q.Exec(`UPDATE payments SET payment_status=?, updated_at=NOW() WHERE id=?`, string(status), id)
	return err
}
