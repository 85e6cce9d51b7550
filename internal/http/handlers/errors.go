package handlers

import (
	"net/http"

	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/domain"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps the domain error taxonomy to HTTP responses.
// Validation failures carry their precondition message to the client;
// anything unclassified stays a generic 500.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondCoded(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondCoded(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondCoded(c, http.StatusConflict, "conflict", err.Error())
	default:
		respondCoded(c, http.StatusInternalServerError, "internal_error", "something went wrong")
	}
}

func respondCoded(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"message":    message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}
