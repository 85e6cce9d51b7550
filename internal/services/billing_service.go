package services

import (
	"fmt"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/utils"
)

// BillingService computes a guest's current charges. Read-only: every call
// recomputes from stored state, nothing is cached or written.
type BillingService struct {
	BookingRepo repositories.BookingRepository
	BillingRepo repositories.BillingRepository
	RequestID   string
}

// ComputeSummary totals room charges (the settled payment on the latest
// booking), completed service charges, and branch tax. A guest with no
// bookings gets a zero-valued summary, not an error.
func (s BillingService) ComputeSummary(guestID int64) (models.BillingSummary, error) {
	if guestID <= 0 {
		return models.BillingSummary{}, domain.ValidationError{Field: "guest_id", Msg: "must be positive"}
	}

	booking, err := s.BookingRepo.LatestByGuest(guestID)
	if domain.IsNotFound(err) {
		return models.BillingSummary{GuestID: guestID}, nil
	}
	if err != nil {
		return models.BillingSummary{}, err
	}

	branchName, taxRate, err := s.BillingRepo.BranchFacts(booking.BranchID)
	if err != nil {
		return models.BillingSummary{}, err
	}

	roomCharges, err := s.BillingRepo.SuccessfulPaymentAmount(booking.ID)
	if err != nil {
		return models.BillingSummary{}, err
	}

	serviceCharges, err := s.BillingRepo.CompletedServiceTotal(guestID)
	if err != nil {
		return models.BillingSummary{}, err
	}

	subtotal := roomCharges + serviceCharges
	taxAmount := subtotal * taxRate / 100

	utils.LogEvent(s.RequestID, "billing", "summary",
		fmt.Sprintf("guest_id=%d booking_id=%d subtotal=%.2f tax=%.2f", guestID, booking.ID, subtotal, taxAmount))

	return models.BillingSummary{
		GuestID:        guestID,
		BookingID:      booking.ID,
		Branch:         branchName,
		RoomCharges:    roomCharges,
		ServiceCharges: serviceCharges,
		TaxRate:        taxRate,
		TaxAmount:      taxAmount,
		Total:          subtotal + taxAmount,
	}, nil
}
