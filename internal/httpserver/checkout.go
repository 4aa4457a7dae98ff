package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

func checkoutHandler(svc CheckoutService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopperID, ok := pathID(c)
		if !ok {
			return
		}
		p, err := svc.Finalize(c.Request.Context(), shopperID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}
