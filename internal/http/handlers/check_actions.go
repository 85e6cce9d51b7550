package handlers

import (
	"net/http"
	"strconv"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

type checkActionRequest struct {
	BookingID  int64  `json:"booking_id"`
	ActionBy   string `json:"action_by"`
	ActionType string `json:"action_type"`
	StaffID    int64  `json:"staff_id"`
	Notes      string `json:"notes"`
}

// POST /api/check-actions
// Guard failures (wrong state) come back as 400 with the precondition in the
// message and leave booking/room/log untouched.
func PerformCheckAction(c *gin.Context) {
	var req checkActionRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	result, err := checkActionService(c).PerformCheckAction(services.CheckActionInput{
		BookingID:  req.BookingID,
		ActionBy:   domain.ActorRole(req.ActionBy),
		ActionType: domain.CheckAction(req.ActionType),
		ActorID:    req.StaffID,
		Notes:      req.Notes,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Action " + req.ActionType + " completed.",
		"result":  result,
	})
}

// GET /api/check-actions/booking/:id
func FetchCheckLogsByBooking(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	logs, err := checkActionService(c).ListCheckLogs(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
