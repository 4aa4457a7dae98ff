package checkout

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"checkout-engine/internal/domain"
	cartrepo "checkout-engine/internal/repository/cart"
	purchaserepo "checkout-engine/internal/repository/purchase"
	"checkout-engine/internal/uow"
)

type stubCarts struct {
	lockErr    error
	lines      []domain.CheckoutLine
	linesErr   error
	clearErr   error
	clearCalls int
	lastLocked int64
}

func (s *stubCarts) LockShopper(_ context.Context, shopperID int64) error {
	s.lastLocked = shopperID
	return s.lockErr
}

func (s *stubCarts) LinesForCheckout(_ context.Context, _ int64) ([]domain.CheckoutLine, error) {
	return s.lines, s.linesErr
}

func (s *stubCarts) Clear(_ context.Context, _ int64) error {
	s.clearCalls++
	return s.clearErr
}

type stubLedger struct {
	appended  []domain.Purchase
	appendErr error
}

func (s *stubLedger) Append(_ context.Context, p domain.Purchase) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, p)
	return nil
}

type stubUnit struct {
	carts     *stubCarts
	ledger    *stubLedger
	commitErr error
	committed bool
	rollbacks int
}

func (u *stubUnit) Carts() cartrepo.TxRepository { return u.carts }

func (u *stubUnit) Purchases() purchaserepo.TxRepository { return u.ledger }

func (u *stubUnit) Commit(_ context.Context) error {
	if u.commitErr != nil {
		return u.commitErr
	}
	u.committed = true
	return nil
}

func (u *stubUnit) Rollback(_ context.Context) error {
	if !u.committed {
		u.rollbacks++
	}
	return nil
}

type stubStarter struct {
	unit     *stubUnit
	beginErr error
}

func (s *stubStarter) Begin(_ context.Context) (uow.UnitOfWork, error) {
	if s.beginErr != nil {
		return nil, s.beginErr
	}
	return s.unit, nil
}

func money(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.ParseMoney(s)
	if err != nil {
		t.Fatalf("ParseMoney(%q): %v", s, err)
	}
	return m
}

func newTestService(unit *stubUnit) *Service {
	svc := New(&stubStarter{unit: unit}, nil)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC) }
	svc.newID = func() string { return "purchase-1" }
	return svc
}

func TestFinalizeComputesExactTotal(t *testing.T) {
	unit := &stubUnit{
		carts: &stubCarts{lines: []domain.CheckoutLine{
			{ProductID: 1, Name: "Notebook", UnitPrice: money(t, "799.90"), Quantity: 1},
			{ProductID: 2, Name: "Headset", UnitPrice: money(t, "499.90"), Quantity: 2},
		}},
		ledger: &stubLedger{},
	}
	svc := newTestService(unit)

	p, err := svc.Finalize(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Total.String() != "1799.70" {
		t.Fatalf("total = %s, want 1799.70", p.Total)
	}
	if p.ID != "purchase-1" || p.ShopperID != 7 {
		t.Fatalf("unexpected purchase identity: %+v", p)
	}
	if len(p.Lines) != 2 || p.Lines[0].Name != "Notebook" || p.Lines[1].Quantity != 2 {
		t.Fatalf("unexpected snapshot lines: %+v", p.Lines)
	}
	if !p.Lines[1].UnitPrice.Equal(money(t, "499.90")) {
		t.Fatalf("snapshot price drifted: %s", p.Lines[1].UnitPrice)
	}
	if len(unit.ledger.appended) != 1 {
		t.Fatalf("expected 1 appended purchase, got %d", len(unit.ledger.appended))
	}
	if unit.carts.clearCalls != 1 {
		t.Fatalf("expected cart cleared once, got %d", unit.carts.clearCalls)
	}
	if !unit.committed {
		t.Fatalf("expected unit committed")
	}
	if unit.carts.lastLocked != 7 {
		t.Fatalf("expected shopper 7 locked, got %d", unit.carts.lastLocked)
	}
}

func TestFinalizeEmptyCart(t *testing.T) {
	unit := &stubUnit{carts: &stubCarts{}, ledger: &stubLedger{}}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 7)
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(unit.ledger.appended) != 0 || unit.carts.clearCalls != 0 {
		t.Fatalf("empty cart must not write anything")
	}
	if unit.committed || unit.rollbacks != 1 {
		t.Fatalf("expected rollback without commit, committed=%v rollbacks=%d", unit.committed, unit.rollbacks)
	}
}

func TestFinalizeUnknownShopper(t *testing.T) {
	unit := &stubUnit{carts: &stubCarts{lockErr: domain.ErrNotFound}, ledger: &stubLedger{}}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if unit.committed {
		t.Fatalf("must not commit for unknown shopper")
	}
}

func TestFinalizeProductVanished(t *testing.T) {
	unit := &stubUnit{
		carts:  &stubCarts{linesErr: fmt.Errorf("product 3: %w", domain.ErrProductVanished)},
		ledger: &stubLedger{},
	}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 7)
	if !errors.Is(err, domain.ErrProductVanished) {
		t.Fatalf("expected ErrProductVanished, got %v", err)
	}
	if unit.committed || len(unit.ledger.appended) != 0 {
		t.Fatalf("vanished product must abort the unit of work")
	}
}

func TestFinalizeBeginError(t *testing.T) {
	svc := New(&stubStarter{beginErr: errors.New("pool exhausted")}, nil)
	_, err := svc.Finalize(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected begin error")
	}
}

func TestFinalizeAppendErrorRollsBack(t *testing.T) {
	unit := &stubUnit{
		carts: &stubCarts{lines: []domain.CheckoutLine{
			{ProductID: 1, Name: "Mug", UnitPrice: money(t, "12.99"), Quantity: 1},
		}},
		ledger: &stubLedger{appendErr: errors.New("disk full")},
	}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected append error")
	}
	if unit.committed || unit.rollbacks != 1 {
		t.Fatalf("expected rollback, committed=%v rollbacks=%d", unit.committed, unit.rollbacks)
	}
	if unit.carts.clearCalls != 0 {
		t.Fatalf("cart must not be cleared after append failure")
	}
}

func TestFinalizeClearErrorRollsBack(t *testing.T) {
	unit := &stubUnit{
		carts: &stubCarts{
			lines: []domain.CheckoutLine{
				{ProductID: 1, Name: "Mug", UnitPrice: money(t, "12.99"), Quantity: 1},
			},
			clearErr: errors.New("deadlock"),
		},
		ledger: &stubLedger{},
	}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected clear error")
	}
	if unit.committed {
		t.Fatalf("must not commit after clear failure")
	}
}

func TestFinalizeCommitError(t *testing.T) {
	unit := &stubUnit{
		carts: &stubCarts{lines: []domain.CheckoutLine{
			{ProductID: 1, Name: "Mug", UnitPrice: money(t, "12.99"), Quantity: 1},
		}},
		ledger:    &stubLedger{},
		commitErr: errors.New("connection reset"),
	}
	svc := newTestService(unit)

	_, err := svc.Finalize(context.Background(), 7)
	if err == nil {
		t.Fatalf("expected commit error")
	}
}

func TestFinalizeAccumulatesManyLines(t *testing.T) {
	lines := make([]domain.CheckoutLine, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, domain.CheckoutLine{
			ProductID: int64(i + 1),
			Name:      "Sticker",
			UnitPrice: money(t, "0.10"),
			Quantity:  3,
		})
	}
	unit := &stubUnit{carts: &stubCarts{lines: lines}, ledger: &stubLedger{}}
	svc := newTestService(unit)

	p, err := svc.Finalize(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Total.String() != "3.00" {
		t.Fatalf("total = %s, want 3.00", p.Total)
	}
}
