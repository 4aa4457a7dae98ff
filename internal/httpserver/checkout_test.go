package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"checkout-engine/internal/domain"
	"github.com/gin-gonic/gin"
)

type stubCheckout struct {
	purchase    *domain.Purchase
	err         error
	lastShopper int64
}

func (s *stubCheckout) Finalize(_ context.Context, shopperID int64) (*domain.Purchase, error) {
	s.lastShopper = shopperID
	return s.purchase, s.err
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func checkoutRouter(svc CheckoutService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/shoppers/:id/checkout", checkoutHandler(svc, testLogger()))
	return router
}

func decodeErrorKind(t *testing.T, body io.Reader) string {
	t.Helper()
	var payload struct {
		Error struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	return payload.Error.Kind
}

func TestCheckoutHandler_Success(t *testing.T) {
	price, _ := domain.ParseMoney("799.90")
	total, _ := domain.ParseMoney("1799.70")
	svc := &stubCheckout{purchase: &domain.Purchase{
		ID:        "11111111-1111-1111-1111-111111111111",
		ShopperID: 7,
		CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Total:     total,
		Lines: []domain.PurchaseLine{
			{ProductID: 1, Name: "Notebook", UnitPrice: price, Quantity: 1},
		},
	}}
	router := checkoutRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/shoppers/7/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if svc.lastShopper != 7 {
		t.Fatalf("expected shopper 7, got %d", svc.lastShopper)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"total":"1799.70"`) {
		t.Fatalf("expected fixed-point total in body, got %s", body)
	}
	if !strings.Contains(body, `"unitPrice":"799.90"`) {
		t.Fatalf("expected snapshot price in body, got %s", body)
	}
}

func TestCheckoutHandler_EmptyCart(t *testing.T) {
	router := checkoutRouter(&stubCheckout{err: domain.ErrEmptyCart})

	req := httptest.NewRequest(http.MethodPost, "/shoppers/7/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
	if kind := decodeErrorKind(t, rec.Body); kind != "EMPTY_CART" {
		t.Fatalf("expected EMPTY_CART kind, got %s", kind)
	}
}

func TestCheckoutHandler_UnknownShopper(t *testing.T) {
	router := checkoutRouter(&stubCheckout{err: domain.ErrNotFound})

	req := httptest.NewRequest(http.MethodPost, "/shoppers/99/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if kind := decodeErrorKind(t, rec.Body); kind != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND kind, got %s", kind)
	}
}

func TestCheckoutHandler_InternalError(t *testing.T) {
	router := checkoutRouter(&stubCheckout{err: errors.New("tx deadlock")})

	req := httptest.NewRequest(http.MethodPost, "/shoppers/7/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if kind := decodeErrorKind(t, rec.Body); kind != "INTERNAL" {
		t.Fatalf("expected INTERNAL kind, got %s", kind)
	}
}

func TestCheckoutHandler_BadShopperID(t *testing.T) {
	svc := &stubCheckout{}
	router := checkoutRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/shoppers/abc/checkout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if svc.lastShopper != 0 {
		t.Fatalf("engine must not be called for a malformed id")
	}
}
