package httpserver

import (
	"log"
	"net/http"

	"checkout-engine/internal/domain"
	"github.com/gin-gonic/gin"
)

func getPurchaseHandler(svc PurchaseService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func listPurchasesHandler(svc PurchaseService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopperID, ok := pathID(c)
		if !ok {
			return
		}
		purchases, err := svc.ListByShopper(c.Request.Context(), shopperID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if purchases == nil {
			purchases = []domain.Purchase{}
		}
		c.JSON(http.StatusOK, purchases)
	}
}
