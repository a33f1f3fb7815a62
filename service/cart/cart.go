package cart

import (
	"sync"

	"companion.GO/core/errs"
	"companion.GO/service/catalog"
)

// LineItem is a product with a positive quantity.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (l LineItem) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Store holds at most one line per product id, in first-added order.
type Store struct {
	mu    sync.Mutex
	lines []LineItem
	index map[string]int
}

func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

func checkAdd(product catalog.Product, delta int) error {
	if delta <= 0 {
		return errs.Validation(errs.ErrMsgQuantityPositive)
	}
	if product.ID == "" {
		return errs.Validation(errs.ErrMsgProductIDRequired)
	}
	return nil
}

// Add merges delta into the line for product.ID, creating it when missing.
func (s *Store) Add(product catalog.Product, delta int) error {
	if err := checkAdd(product, delta); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addLocked(product, delta)
	return nil
}

// AddAll adds delta of every product, or nothing when any of them is invalid.
func (s *Store) AddAll(products []catalog.Product, delta int) error {
	for _, p := range products {
		if err := checkAdd(p, delta); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		s.addLocked(p, delta)
	}
	return nil
}

func (s *Store) addLocked(product catalog.Product, delta int) {
	if i, ok := s.index[product.ID]; ok {
		s.lines[i].Quantity += delta
		return
	}
	s.index[product.ID] = len(s.lines)
	s.lines = append(s.lines, LineItem{Product: product, Quantity: delta})
}

// SetQuantity overwrites a line's quantity. Zero removes the line (no-op when absent).
// A nonzero quantity for an unknown id fails with InvalidState and changes nothing.
func (s *Store) SetQuantity(productID string, quantity int) error {
	if quantity < 0 {
		return errs.Validation(errs.ErrMsgQuantityNegative)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.index[productID]
	if quantity == 0 {
		if ok {
			s.remove(i)
		}
		return nil
	}
	if !ok {
		return errs.InvalidStatef("%s: %s", errs.ErrMsgItemNotInCart, productID)
	}
	s.lines[i].Quantity = quantity
	return nil
}

func (s *Store) remove(i int) {
	delete(s.index, s.lines[i].Product.ID)
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	for j := i; j < len(s.lines); j++ {
		s.index[s.lines[j].Product.ID] = j
	}
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LineItem(nil), s.lines...)
}

// Quantity returns the quantity for id, 0 when absent.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i, ok := s.index[productID]; ok {
		return s.lines[i].Quantity
	}
	return 0
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Count sums quantities across lines.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, l := range s.lines {
		n += l.Quantity
	}
	return n
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, l := range s.lines {
		total += l.LineTotal()
	}
	return total
}

func (s *Store) Clear() {
	s.mu.Lock()
	s.lines = nil
	s.index = make(map[string]int)
	s.mu.Unlock()
}
