package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"github.com/fleetops/fleet-backoffice/internal/db"
	"github.com/fleetops/fleet-backoffice/internal/middleware"
)

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// respondError writes the standard error shape.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondBindingError turns a bind failure into a 400 with per-field
// messages when the failure came from validation, or a generic message for
// malformed JSON.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{
				Field:   fe.Field(),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  fields,
		})
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// respondStoreError maps store sentinels onto the HTTP taxonomy: missing or
// unaddressable ids are 404, constraint collisions are 400, anything else
// is a logged 500.
func respondStoreError(c *gin.Context, err error, entity, duplicateMessage string) {
	switch {
	case errors.Is(err, db.ErrNotFound), errors.Is(err, db.ErrInvalidID):
		respondError(c, http.StatusNotFound, entity+" not found")
	case errors.Is(err, db.ErrDuplicate):
		respondError(c, http.StatusBadRequest, duplicateMessage)
	default:
		log.WithFields(log.Fields{
			"request_id": middleware.GetRequestID(c),
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("store operation failed")
		respondError(c, http.StatusInternalServerError, "Server error")
	}
}
