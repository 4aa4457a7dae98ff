package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"checkout-engine/internal/domain"
)

type ProductWriter interface {
	Upsert(ctx context.Context, name string, price domain.Money) (*domain.Product, error)
}

// CSVImporter reads a catalog CSV (name,price columns) and inserts or
// updates products.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		productRepo: repo,
	}
}

// Run parses CSV rows and upserts one product per row. The price column
// must be a non-negative two-digit decimal.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	nameIdx, priceIdx := -1, -1
	for idx, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "name":
			nameIdx = idx
		case "price":
			priceIdx = idx
		}
	}
	if nameIdx < 0 || priceIdx < 0 {
		return 0, errors.New("csv must have name and price columns")
	}

	imported := 0
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}
		if nameIdx >= len(record) || priceIdx >= len(record) {
			continue
		}
		name := strings.TrimSpace(record[nameIdx])
		if name == "" {
			continue
		}
		price, err := domain.ParseMoney(strings.TrimSpace(record[priceIdx]))
		if err != nil {
			return imported, fmt.Errorf("product %q: %w", name, err)
		}
		if price.IsNegative() {
			return imported, fmt.Errorf("product %q: negative price", name)
		}
		if _, err := i.productRepo.Upsert(ctx, name, price); err != nil {
			return imported, fmt.Errorf("upsert product %q: %w", name, err)
		}
		imported++
	}

	return imported, nil
}
