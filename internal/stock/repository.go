package stock

import (
	"tillbox/internal/id"
	"tillbox/internal/store"
)

const idDigits = 5

type Repository interface {
	Create(name string, price, quantity int) *Stock
	Add(s *Stock)
	Find(id int) (*Stock, error)
	Remove(id int)
	IncrementQuantity(id, amount int)
	DecrementQuantity(id, amount int)
	All() []*Stock
	Len() int
}

type repository struct {
	list *store.List[*Stock]
	gen  *id.Generator
}

func NewRepository(gen *id.Generator) Repository {
	return &repository{
		list: store.New[*Stock](),
		gen:  gen,
	}
}

// Create allocates a record with a fresh id. The caller appends it via
// Add; a snapshot load bypasses Create so ids survive restarts.
func (r *repository) Create(name string, price, quantity int) *Stock {
	return &Stock{
		ID:       r.gen.NewUnique(idDigits, r.has),
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
}

func (r *repository) has(id int) bool {
	_, ok := r.list.Find(id)
	return ok
}

func (r *repository) Add(s *Stock) {
	r.list.Append(s)
}

func (r *repository) Find(id int) (*Stock, error) {
	s, ok := r.list.Find(id)
	if !ok {
		return nil, ErrStockNotFound
	}
	return s, nil
}

// Remove is a silent no-op when the id is absent.
func (r *repository) Remove(id int) {
	r.list.Remove(id)
}

func (r *repository) IncrementQuantity(id, amount int) {
	if s, ok := r.list.Find(id); ok {
		s.Quantity += amount
	}
}

func (r *repository) DecrementQuantity(id, amount int) {
	if s, ok := r.list.Find(id); ok {
		s.Quantity -= amount
	}
}

func (r *repository) All() []*Stock {
	return r.list.All()
}

func (r *repository) Len() int {
	return r.list.Len()
}
