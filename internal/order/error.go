package order

import "errors"

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrItemNotFound    = errors.New("order has no line for that stock")
	ErrInvalidPayment  = errors.New("unknown payment type")
	ErrInvalidStatus   = errors.New("unknown order status")
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)
