package chat

import "companion.GO/service/catalog"

// Selection tracks which recommended products are checked.
type Selection struct {
	checked map[string]bool
}

func NewSelection() *Selection {
	return &Selection{checked: make(map[string]bool)}
}

func (s *Selection) Toggle(id string) bool {
	s.checked[id] = !s.checked[id]
	return s.checked[id]
}

func (s *Selection) IsSelected(id string) bool {
	return s.checked[id]
}

// AllSelected is true when every product is checked (vacuously true for none).
func (s *Selection) AllSelected(products []catalog.Product) bool {
	for _, p := range products {
		if !s.checked[p.ID] {
			return false
		}
	}
	return true
}

// ToggleAll clears the group when fully selected, otherwise selects all of it.
func (s *Selection) ToggleAll(products []catalog.Product) {
	target := !s.AllSelected(products)
	for _, p := range products {
		s.checked[p.ID] = target
	}
}

// SelectedIn returns the checked products of the group, in group order.
func (s *Selection) SelectedIn(products []catalog.Product) []catalog.Product {
	var out []catalog.Product
	for _, p := range products {
		if s.checked[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

func (s *Selection) Clear() {
	s.checked = make(map[string]bool)
}

// Snapshot returns the checked ids only.
func (s *Selection) Snapshot() map[string]bool {
	out := make(map[string]bool, len(s.checked))
	for id, on := range s.checked {
		if on {
			out[id] = true
		}
	}
	return out
}
