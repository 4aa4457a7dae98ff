package domain

import "time"

// PurchaseLine freezes product name and unit price as they were at
// purchase time. Later catalog edits never touch it.
type PurchaseLine struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

// Purchase is the immutable record of a completed checkout. Total is
// always the exact decimal sum of unit price times quantity over Lines.
type Purchase struct {
	ID        string         `json:"id"`
	ShopperID int64          `json:"shopperId"`
	CreatedAt time.Time      `json:"createdAt"`
	Total     Money          `json:"total"`
	Lines     []PurchaseLine `json:"lines"`
}
