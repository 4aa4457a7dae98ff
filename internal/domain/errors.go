package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart rejects a checkout attempt for a cart with no lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProductVanished marks a cart line whose product no longer
	// exists in the catalog at checkout read time.
	ErrProductVanished = errors.New("cart line references a missing product")
)
