package httpserver

import (
	"log"
	"net/http"

	"checkout-engine/internal/domain"
	"github.com/gin-gonic/gin"
)

type addCartItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

type cartView struct {
	ShopperID int64                 `json:"shopperId"`
	Lines     []domain.CheckoutLine `json:"lines"`
	Subtotal  domain.Money          `json:"subtotal"`
}

func getCartHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopperID, ok := pathID(c)
		if !ok {
			return
		}
		lines, err := svc.Get(c.Request.Context(), shopperID)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		view := cartView{ShopperID: shopperID, Lines: lines}
		if view.Lines == nil {
			view.Lines = []domain.CheckoutLine{}
		}
		for _, line := range lines {
			view.Subtotal = view.Subtotal.Add(line.Subtotal())
		}
		c.JSON(http.StatusOK, view)
	}
}

func addCartItemHandler(svc CartService, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shopperID, ok := pathID(c)
		if !ok {
			return
		}
		var in addCartItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, errorBody(kindInvalid, "invalid request body"))
			return
		}
		if in.Quantity < 1 {
			c.JSON(http.StatusBadRequest, errorBody(kindInvalid, "quantity must be positive"))
			return
		}
		if err := svc.AddItem(c.Request.Context(), shopperID, in.ProductID, in.Quantity); err != nil {
			respondError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
