package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"checkout-engine/internal/config"
	"checkout-engine/internal/db"
	"checkout-engine/internal/httpserver"
	cartrepo "checkout-engine/internal/repository/cart"
	productrepo "checkout-engine/internal/repository/product"
	purchaserepo "checkout-engine/internal/repository/purchase"
	shopperrepo "checkout-engine/internal/repository/shopper"
	cartsvc "checkout-engine/internal/service/cart"
	checkoutsvc "checkout-engine/internal/service/checkout"
	purchasesvc "checkout-engine/internal/service/purchase"
	"checkout-engine/internal/uow"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	shopperRepo := shopperrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	purchaseRepo := purchaserepo.NewPostgres(dbpool, logger)

	cartService := cartsvc.New(cartRepo, productRepo, shopperRepo)
	checkoutService := checkoutsvc.New(uow.NewPostgres(dbpool), logger)
	purchaseService := purchasesvc.New(purchaseRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Shoppers:  shopperRepo,
		Products:  productRepo,
		Cart:      cartService,
		Checkout:  checkoutService,
		Purchases: purchaseService,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
