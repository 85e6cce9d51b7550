package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders the downloadable billing invoice PDF.
type DocsService struct {
	Billing   BillingService
	RequestID string
	Loader    func(int64) (models.BillingSummary, error)
}

func (s DocsService) GenerateBillingInvoice(guestID int64) ([]byte, string, error) {
	data, err := s.loadSummary(guestID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("guest_id=%d booking_id=%d", guestID, data.BookingID))
	return buildBillingInvoicePDF(data)
}

func (s DocsService) loadSummary(guestID int64) (models.BillingSummary, error) {
	if s.Loader != nil {
		return s.Loader(guestID)
	}
	return s.Billing.ComputeSummary(guestID)
}

func buildBillingInvoicePDF(sum models.BillingSummary) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Billing Invoice", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BILLING INVOICE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Guest ID        : %d", sum.GuestID),
		fmt.Sprintf("Booking         : #%d", sum.BookingID),
		fmt.Sprintf("Branch          : %s", safe(sum.Branch, "-")),
		fmt.Sprintf("Issued          : %s", time.Now().Format("2006-01-02 15:04")),
		fmt.Sprintf("Room Charges    : %s", utils.FormatMoney(sum.RoomCharges)),
		fmt.Sprintf("Service Charges : %s", utils.FormatMoney(sum.ServiceCharges)),
		fmt.Sprintf("Tax (%.1f%%)     : %s", sum.TaxRate, utils.FormatMoney(sum.TaxAmount)),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("TOTAL           : %s", utils.FormatMoney(sum.Total)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Charges are recomputed from the current ledger at print time. Completed service requests only.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("billing-invoice-guest-%d.pdf", sum.GuestID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
