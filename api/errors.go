package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahatoankit/flightbook/internal/domain"
)

// writeError maps the domain error kinds onto HTTP statuses: lookups that miss
// are 404, uniqueness and capacity violations are 409, everything else is
// treated as a bad request.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFromError(err), gin.H{"error": err.Error()})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateID),
		errors.Is(err, domain.ErrDuplicateName),
		errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateFlight),
		errors.Is(err, domain.ErrCapacityExceeded):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
