package repositories

import (
	"database/sql"
	"errors"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
)

// BillingRepository is the read-only query set behind the billing aggregator.
type BillingRepository struct {
	DB *sql.DB
}

func (r BillingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// BranchFacts returns the branch name and tax rate used for a summary.
func (r BillingRepository) BranchFacts(branchID int64) (string, float64, error) {
	var (
		name    string
		taxRate float64
	)
	err := r.db().QueryRow(`
		SELECT COALESCE(branch_name,''), COALESCE(tax_rate,0)
		FROM branches
		WHERE id=? LIMIT 1`, branchID).Scan(&name, &taxRate)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, domain.NotFoundError{Resource: "branch", Err: err}
	}
	if err != nil {
		return "", 0, err
	}
	return name, taxRate, nil
}

// SuccessfulPaymentAmount returns the settled amount for a booking, 0 when
// no payment has settled.
func (r BillingRepository) SuccessfulPaymentAmount(bookingID int64) (float64, error) {
	var amount float64
	err := r.db().QueryRow(`
		SELECT COALESCE(amount,0)
		FROM payments
		WHERE booking_id=? AND payment_status=?
		ORDER BY updated_at DESC, id DESC
		LIMIT 1`, bookingID, string(domain.PaymentSuccess)).Scan(&amount)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// CompletedServiceTotal sums catalog prices over the guest's completed
// service requests; price is denormalized from services at read time.
func (r BillingRepository) CompletedServiceTotal(guestID int64) (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(s.price),0)
		FROM service_requests sr
		JOIN services s ON s.id = sr.service_id
		WHERE sr.guest_id=? AND sr.status=?`, guestID, string(domain.ServiceCompleted)).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}
