package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"checkout-engine/internal/domain"
	"github.com/gin-gonic/gin"
)

// Machine-readable error kinds other systems key off; stable contract.
const (
	kindEmptyCart = "EMPTY_CART"
	kindNotFound  = "NOT_FOUND"
	kindInvalid   = "INVALID"
	kindInternal  = "INTERNAL"
)

func errorBody(kind, message string) gin.H {
	return gin.H{"error": gin.H{"kind": kind, "message": message}}
}

// respondError maps domain errors onto the wire taxonomy: empty cart and
// not found are client-correctable, everything else is a server fault.
func respondError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		c.JSON(http.StatusConflict, errorBody(kindEmptyCart, "cart is empty"))
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorBody(kindNotFound, "not found"))
	default:
		logger.Printf("http: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, errorBody(kindInternal, "internal error"))
	}
}

// pathID parses a numeric id path parameter. A malformed id can never
// denote an existing resource, so it responds NOT_FOUND.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, errorBody(kindNotFound, "not found"))
		return 0, false
	}
	return id, true
}
