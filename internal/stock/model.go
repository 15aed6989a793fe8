package stock

// MaxNameLen bounds inventory item names.
const MaxNameLen = 100

// Stock is one inventory record. Price is in currency minor units.
// Quantity may go negative; the store enforces no floor.
type Stock struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

func (s *Stock) RecordID() int { return s.ID }
