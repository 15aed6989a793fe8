// Package snapshot persists the three record stores as flat files: one
// JSON record per line, written head to tail so insertion order and ids
// survive a restart.
package snapshot

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tillbox/internal/logger"
	"tillbox/internal/order"
	"tillbox/internal/stock"
	"tillbox/internal/store"
	"tillbox/internal/user"

	"go.uber.org/zap"
)

const (
	usersFile  = "users.jsonl"
	stocksFile = "stocks.jsonl"
	ordersFile = "orders.jsonl"
)

type Snapshot struct {
	dir    string
	users  user.Repository
	stocks stock.Repository
	orders order.Repository
}

func New(dir string, users user.Repository, stocks stock.Repository, orders order.Repository) *Snapshot {
	return &Snapshot{dir: dir, users: users, stocks: stocks, orders: orders}
}

// orderRecord flattens an order with its owned items into one line.
type orderRecord struct {
	ID          int               `json:"id"`
	CashierID   int               `json:"cashier_id"`
	PaymentType order.PaymentType `json:"payment_type"`
	Status      order.Status      `json:"status"`
	Items       []order.Item      `json:"items"`
}

// Load repopulates the stores from a prior snapshot. Missing files mean
// empty collections; a malformed line aborts that collection's load.
// Ids come from the snapshot, never from the generator.
func (s *Snapshot) Load(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	if err := readLines(filepath.Join(s.dir, usersFile), func(line []byte) error {
		var u user.User
		if err := json.Unmarshal(line, &u); err != nil {
			return err
		}
		s.users.Add(&u)
		return nil
	}); err != nil {
		return fmt.Errorf("loading users: %w", err)
	}

	if err := readLines(filepath.Join(s.dir, stocksFile), func(line []byte) error {
		var st stock.Stock
		if err := json.Unmarshal(line, &st); err != nil {
			return err
		}
		s.stocks.Add(&st)
		return nil
	}); err != nil {
		return fmt.Errorf("loading stocks: %w", err)
	}

	if err := readLines(filepath.Join(s.dir, ordersFile), func(line []byte) error {
		var rec orderRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		o := &order.Order{
			ID:          rec.ID,
			CashierID:   rec.CashierID,
			PaymentType: rec.PaymentType,
			Status:      rec.Status,
			Items:       newItemList(rec.Items),
		}
		s.orders.Add(o)
		return nil
	}); err != nil {
		return fmt.Errorf("loading orders: %w", err)
	}

	log.Info("snapshot loaded",
		zap.Int("users", s.users.Len()),
		zap.Int("stocks", s.stocks.Len()),
		zap.Int("orders", s.orders.Len()),
	)
	return nil
}

// Save serializes the stores' current contents, head to tail.
func (s *Snapshot) Save(ctx context.Context) error {
	log := logger.FromCtx(ctx)

	if err := writeLines(filepath.Join(s.dir, usersFile), func(w *bufio.Writer) error {
		for _, u := range s.users.All() {
			if err := writeJSON(w, u); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}

	if err := writeLines(filepath.Join(s.dir, stocksFile), func(w *bufio.Writer) error {
		for _, st := range s.stocks.All() {
			if err := writeJSON(w, st); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("saving stocks: %w", err)
	}

	if err := writeLines(filepath.Join(s.dir, ordersFile), func(w *bufio.Writer) error {
		for _, o := range s.orders.All() {
			rec := orderRecord{
				ID:          o.ID,
				CashierID:   o.CashierID,
				PaymentType: o.PaymentType,
				Status:      o.Status,
				Items:       make([]order.Item, 0, o.Items.Len()),
			}
			for _, it := range o.Items.All() {
				rec.Items = append(rec.Items, *it)
			}
			if err := writeJSON(w, rec); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return fmt.Errorf("saving orders: %w", err)
	}

	log.Info("snapshot saved", zap.String("dir", s.dir))
	return nil
}

// newItemList rebuilds an order's item list. Lines were written head to
// tail, so appending restores the original order.
func newItemList(items []order.Item) *store.List[*order.Item] {
	l := store.New[*order.Item]()
	for i := range items {
		l.Append(&items[i])
	}
	return l
}

func readLines(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func writeLines(path string, fn func(w *bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w *bufio.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	return w.WriteByte('\n')
}
