package handlers

import (
	"net/http"
	"strconv"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/middleware"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/billing/:guestId
func GetBillingSummary(c *gin.Context) {
	guestID, err := strconv.ParseInt(c.Param("guestId"), 10, 64)
	if err != nil || guestID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid guest id", err)
		return
	}

	summary, err := billingService(c).ComputeSummary(guestID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GET /api/billing/:guestId/invoice
func GetBillingInvoicePDF(c *gin.Context) {
	guestID, err := strconv.ParseInt(c.Param("guestId"), 10, 64)
	if err != nil || guestID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid guest id", err)
		return
	}

	svc := services.DocsService{
		Billing:   billingService(c),
		RequestID: middleware.GetRequestID(c),
	}
	data, filename, err := svc.GenerateBillingInvoice(guestID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
