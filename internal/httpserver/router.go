package httpserver

import (
	"context"
	"log"

	"checkout-engine/internal/domain"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CheckoutService is the checkout transaction engine as the HTTP layer
// sees it.
type CheckoutService interface {
	Finalize(ctx context.Context, shopperID int64) (*domain.Purchase, error)
}

type CartService interface {
	AddItem(ctx context.Context, shopperID, productID int64, quantity int) error
	Get(ctx context.Context, shopperID int64) ([]domain.CheckoutLine, error)
}

type PurchaseService interface {
	Get(ctx context.Context, id string) (*domain.Purchase, error)
	ListByShopper(ctx context.Context, shopperID int64) ([]domain.Purchase, error)
}

type ShopperLister interface {
	List(ctx context.Context) ([]domain.Shopper, error)
}

type ProductReader interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Deps carries the services the router exposes.
type Deps struct {
	Shoppers  ShopperLister
	Products  ProductReader
	Cart      CartService
	Checkout  CheckoutService
	Purchases PurchaseService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/shoppers", listShoppersHandler(deps.Shoppers, logger))
	router.GET("/products", listProductsHandler(deps.Products, logger))
	router.GET("/products/:id", getProductHandler(deps.Products, logger))

	router.GET("/shoppers/:id/cart", getCartHandler(deps.Cart, logger))
	router.POST("/shoppers/:id/cart/items", addCartItemHandler(deps.Cart, logger))

	router.POST("/shoppers/:id/checkout", checkoutHandler(deps.Checkout, logger))
	router.GET("/shoppers/:id/purchases", listPurchasesHandler(deps.Purchases, logger))
	router.GET("/purchases/:id", getPurchaseHandler(deps.Purchases, logger))

	return router
}
