package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain/models"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"

	"github.com/gin-gonic/gin"
)

func validateBookingInput(in models.BookingInput) error {
	switch {
	case in.RoomID <= 0:
		return domain.ValidationError{Field: "room_id", Msg: "must be positive"}
	case in.BranchID <= 0:
		return domain.ValidationError{Field: "branch_id", Msg: "must be positive"}
	case in.GuestID <= 0:
		return domain.ValidationError{Field: "guest_id", Msg: "must be positive"}
	case strings.TrimSpace(in.GuestName) == "":
		return domain.ValidationError{Field: "guest_name", Msg: "required"}
	case in.Guests <= 0:
		return domain.ValidationError{Field: "guests", Msg: "must be positive"}
	case in.Nights <= 0:
		return domain.ValidationError{Field: "nights", Msg: "must be positive"}
	}
	return nil
}

// POST /api/bookings
// Intake for a new stay; the booking starts PENDING until a payment settles.
func CreateBooking(c *gin.Context) {
	var in models.BookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := validateBookingInput(in); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := repositories.BookingRepository{}
	id, err := repo.Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created.",
		"booking": booking,
	})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid booking id", err)
		return
	}

	booking, err := repositories.BookingRepository{}.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}
