package order

import (
	"tillbox/internal/id"
	"tillbox/internal/stock"
	"tillbox/internal/store"
)

const (
	orderIDDigits = 5
	itemIDDigits  = 6
)

type Repository interface {
	Create(cashierID int, payment PaymentType) *Order
	Add(o *Order)
	Find(id int) (*Order, error)
	Remove(id int)
	AddItem(o *Order, stockID, quantity int)
	ModifyItem(o *Order, stockID, quantity int)
	SetStatus(o *Order, status Status)
	All() []*Order
	Len() int
}

type repository struct {
	list   *store.List[*Order]
	gen    *id.Generator
	stocks stock.Repository
}

// NewRepository needs the stock store because adding a line resolves
// its stock id first.
func NewRepository(gen *id.Generator, stocks stock.Repository) Repository {
	return &repository{
		list:   store.New[*Order](),
		gen:    gen,
		stocks: stocks,
	}
}

func (r *repository) Create(cashierID int, payment PaymentType) *Order {
	return &Order{
		ID:          r.gen.NewUnique(orderIDDigits, r.has),
		CashierID:   cashierID,
		PaymentType: payment,
		Status:      StatusWaiting,
		Items:       store.New[*Item](),
	}
}

func (r *repository) has(id int) bool {
	_, ok := r.list.Find(id)
	return ok
}

func (r *repository) Add(o *Order) {
	r.list.Append(o)
}

func (r *repository) Find(id int) (*Order, error) {
	o, ok := r.list.Find(id)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// Remove destroys the order together with the items it owns. An absent
// id is a silent no-op.
func (r *repository) Remove(id int) {
	r.list.Remove(id)
}

// AddItem resolves the stock id and silently does nothing when it is
// unknown. A line for a stock id the order already carries is merged by
// incrementing its quantity; a new line is prepended.
func (r *repository) AddItem(o *Order, stockID, quantity int) {
	if _, err := r.stocks.Find(stockID); err != nil {
		return
	}

	if it := o.FindItem(stockID); it != nil {
		it.Quantity += quantity
		return
	}

	o.Items.Prepend(&Item{
		ID:       r.gen.NewUnique(itemIDDigits, func(id int) bool { _, ok := o.Items.Find(id); return ok }),
		StockID:  stockID,
		Quantity: quantity,
	})
}

// ModifyItem overwrites the quantity of the matching line; it never
// creates one. Absent stock ids are a silent no-op.
func (r *repository) ModifyItem(o *Order, stockID, quantity int) {
	if it := o.FindItem(stockID); it != nil {
		it.Quantity = quantity
	}
}

// SetStatus overwrites unconditionally: there is no transition table
// and a completed or cancelled order may be reopened.
func (r *repository) SetStatus(o *Order, status Status) {
	o.Status = status
}

func (r *repository) All() []*Order {
	return r.list.All()
}

func (r *repository) Len() int {
	return r.list.Len()
}
