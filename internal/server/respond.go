package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clktech/storefront/internal/store"
)

// respondError writes the uniform {message, details?} failure shape.
func respondError(c *gin.Context, status int, message string, details interface{}) {
	body := gin.H{"message": message}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// respondStoreError maps accessor failures onto HTTP statuses: 404 for
// missing rows, 400 for rejected payloads, 500 with a generic message
// for everything else.
func respondStoreError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(c, http.StatusNotFound, fallback, nil)
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrDuplicate):
		respondError(c, http.StatusBadRequest, fallback, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, fallback, nil)
	}
}
