package cart

import (
	"sync"

	"github.com/shopspring/decimal"

	"techstore/internal/domain"
)

// Line is one product-quantity pairing in the cart.
type Line struct {
	Product domain.Product
	Qty     int
}

// Subtotal is price × quantity for this line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// Store holds the cart lines for one browser session, in insertion
// order, at most one line per product id. Operations never fail:
// unknown ids are silent no-ops. Safe for concurrent use.
type Store struct {
	mu    sync.Mutex
	lines []Line
}

func NewStore() *Store {
	return &Store{}
}

// Add increments the quantity for the product's line, appending a new
// line with quantity 1 on first add.
func (s *Store) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Qty++
			return
		}
	}
	s.lines = append(s.lines, Line{Product: p, Qty: 1})
}

// SetQuantity replaces the line's quantity. Anything below 1 removes the
// line; an absent id is a no-op.
func (s *Store) SetQuantity(id string, qty int) {
	if qty < 1 {
		s.Remove(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == id {
			s.lines[i].Qty = qty
			return
		}
	}
}

// Remove deletes the matching line if present.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == id {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// Lines returns a copy of the cart contents in insertion order.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Total sums price × quantity over all lines, recomputed on every call.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.lines {
		total = total.Add(l.Product.Price.Mul(decimal.NewFromInt(int64(l.Qty))))
	}
	return total
}
