package importer

import (
	"context"
	"strings"
	"testing"

	"checkout-engine/internal/domain"
)

type upserted struct {
	name  string
	price domain.Money
}

type stubProductRepo struct {
	items []upserted
}

func (s *stubProductRepo) Upsert(_ context.Context, name string, price domain.Money) (*domain.Product, error) {
	s.items = append(s.items, upserted{name: name, price: price})
	return &domain.Product{ID: int64(len(s.items)), Name: name, Price: price}, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `name,price
Notebook,799.90
Headset,499.90
,12.00
Mouse,49.9`

	repo := &stubProductRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected 3 products imported, got %d", count)
	}
	if repo.items[0].name != "Notebook" || repo.items[0].price.String() != "799.90" {
		t.Fatalf("unexpected first product: %+v", repo.items[0])
	}
	if repo.items[2].price.String() != "49.90" {
		t.Fatalf("expected normalized price 49.90, got %s", repo.items[2].price)
	}
}

func TestCSVImporter_RejectsBadPrice(t *testing.T) {
	csvData := `name,price
Notebook,7.999`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected price error")
	}
}

func TestCSVImporter_RejectsNegativePrice(t *testing.T) {
	csvData := `name,price
Notebook,-1.00`

	imp := NewCSVImporter(strings.NewReader(csvData), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected negative price error")
	}
}

func TestCSVImporter_MissingColumns(t *testing.T) {
	imp := NewCSVImporter(strings.NewReader("sku,amount\nX,1"), &stubProductRepo{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected header error")
	}
}
