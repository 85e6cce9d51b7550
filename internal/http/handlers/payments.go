package handlers

import (
	"net/http"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/middleware"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type simulatePaymentRequest struct {
	GuestID        int64   `json:"guest_id"`
	BookingID      int64   `json:"booking_id"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"payment_method"`
	Currency       string  `json:"currency"`
	ReceptionistID int64   `json:"receptionist_id"`
}

func (r simulatePaymentRequest) toInput() services.SimulatePaymentInput {
	return services.SimulatePaymentInput{
		GuestID:   r.GuestID,
		BookingID: r.BookingID,
		Amount:    r.Amount,
		Method:    r.PaymentMethod,
		Currency:  r.Currency,
	}
}

// POST /api/payments/simulate
// Responds 201 before settlement completes; the payment is still PENDING.
func SimulatePayment(c *gin.Context) {
	var req simulatePaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	payment, _, err := paymentService(c).SimulatePayment(req.toInput())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment initiated. Settlement completes after the gateway delay.",
		"payment": payment,
	})
}

// POST /api/payments/reception-checkout (reception only)
// Same contract as SimulatePayment, additionally forces checkout once the
// payment settles.
func SimulateReceptionPayment(c *gin.Context) {
	var req simulatePaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	receptionistID := req.ReceptionistID
	if receptionistID == 0 {
		receptionistID = middleware.ActorID(c)
	}

	payment, _, err := paymentService(c).SimulateReceptionCheckoutPayment(req.toInput(), receptionistID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Payment initiated. Checkout completes after settlement.",
		"payment": payment,
	})
}
