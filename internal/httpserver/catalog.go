package httpserver

import (
	"log"
	"net/http"

	"checkout-engine/internal/domain"
	"github.com/gin-gonic/gin"
)

func listShoppersHandler(repo ShopperLister, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		shoppers, err := repo.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if shoppers == nil {
			shoppers = []domain.Shopper{}
		}
		c.JSON(http.StatusOK, shoppers)
	}
}

func listProductsHandler(repo ProductReader, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := repo.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, err)
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

func getProductHandler(repo ProductReader, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		p, err := repo.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}
