package order

import "tillbox/internal/store"

type PaymentType string

const (
	PaymentPayPal     PaymentType = "PAYPAL"
	PaymentCreditCard PaymentType = "CREDIT_CARD"
	PaymentDebitCard  PaymentType = "DEBIT_CARD"
	PaymentCash       PaymentType = "CASH"
)

// PaymentTypes in menu order.
var PaymentTypes = []PaymentType{PaymentPayPal, PaymentCreditCard, PaymentDebitCard, PaymentCash}

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentPayPal, PaymentCreditCard, PaymentDebitCard, PaymentCash:
		return true
	}
	return false
}

func (p PaymentType) DisplayName() string {
	switch p {
	case PaymentPayPal:
		return "PayPal"
	case PaymentCreditCard:
		return "Credit Card"
	case PaymentDebitCard:
		return "Debit Card"
	case PaymentCash:
		return "Cash"
	}
	return "Unknown"
}

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Statuses in menu order.
var Statuses = []Status{StatusWaiting, StatusCancelled, StatusCompleted}

func (s Status) Valid() bool {
	switch s {
	case StatusWaiting, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) DisplayName() string {
	switch s {
	case StatusWaiting:
		return "Waiting"
	case StatusCancelled:
		return "Cancelled"
	case StatusCompleted:
		return "Completed"
	}
	return "Unknown"
}

// Item is one order line. StockID references the stock store and may go
// dangling when the stock record is removed; it is never ownership.
type Item struct {
	ID       int `json:"id"`
	StockID  int `json:"stock_id"`
	Quantity int `json:"quantity"`
}

func (i *Item) RecordID() int { return i.ID }

// Order owns its Items exclusively: removing the order removes them.
// CashierID references the user store and is tolerated dangling.
type Order struct {
	ID          int
	CashierID   int
	PaymentType PaymentType
	Status      Status
	Items       *store.List[*Item]
}

func (o *Order) RecordID() int { return o.ID }

// FindItem scans the order's lines for the given stock id.
func (o *Order) FindItem(stockID int) *Item {
	var found *Item
	o.Items.Each(func(it *Item) bool {
		if it.StockID == stockID {
			found = it
			return false
		}
		return true
	})
	return found
}
