package stock

import "errors"

var (
	ErrStockNotFound = errors.New("stock not found")
	ErrInvalidName   = errors.New("stock name must be 1-100 characters")
)
