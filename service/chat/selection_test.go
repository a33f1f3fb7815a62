package chat

import (
	"testing"

	"companion.GO/service/catalog"
)

func TestSelection_ToggleAllAsymmetric(t *testing.T) {
	products := catalog.DefaultGroups()[catalog.GroupNecklaces].Products
	s := NewSelection()

	s.Toggle(products[0].ID)
	s.ToggleAll(products)
	if !s.AllSelected(products) {
		t.Fatal("partial selection should move to all selected")
	}
	s.ToggleAll(products)
	for _, p := range products {
		if s.IsSelected(p.ID) {
			t.Fatalf("%s still selected after second toggle", p.ID)
		}
	}
	s.ToggleAll(products)
	if !s.AllSelected(products) {
		t.Error("third toggle should select all again")
	}
}

func TestSelection_SelectedInGroupOrder(t *testing.T) {
	products := catalog.DefaultGroups()[catalog.GroupBracelets].Products
	s := NewSelection()
	s.Toggle(products[2].ID)
	s.Toggle(products[0].ID)
	s.Toggle("necklace-1")

	got := s.SelectedIn(products)
	if len(got) != 2 || got[0].ID != products[0].ID || got[1].ID != products[2].ID {
		t.Errorf("SelectedIn = %v, want [%s %s]", got, products[0].ID, products[2].ID)
	}
	if snap := s.Snapshot(); len(snap) != 3 {
		t.Errorf("Snapshot = %v, want 3 ids", snap)
	}
	s.Toggle("necklace-1")
	if snap := s.Snapshot(); snap["necklace-1"] {
		t.Error("Snapshot should omit unchecked ids")
	}
}
