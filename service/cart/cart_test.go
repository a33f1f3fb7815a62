package cart

import (
	"errors"
	"math/rand"
	"testing"

	"companion.GO/core/errs"
	"companion.GO/service/catalog"
)

var (
	n1 = catalog.Product{ID: "n1", Name: "Elisa", Price: 75}
	e1 = catalog.Product{ID: "e1", Name: "Lee", Price: 65}
	b1 = catalog.Product{ID: "b1", Name: "Elaina", Price: 55}
)

func TestStore_Scenario(t *testing.T) {
	s := NewStore()
	if err := s.Add(n1, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(n1, 1); err != nil {
		t.Fatalf("Add: %v", err)
	}
	items := s.Items()
	if len(items) != 1 || items[0].Product.ID != "n1" || items[0].Quantity != 2 {
		t.Fatalf("Items = %+v, want [{n1 2}]", items)
	}
	if err := s.SetQuantity("n1", 1); err != nil {
		t.Fatalf("SetQuantity 1: %v", err)
	}
	if got := s.Quantity("n1"); got != 1 {
		t.Errorf("Quantity = %d, want 1", got)
	}
	if err := s.SetQuantity("n1", 0); err != nil {
		t.Fatalf("SetQuantity 0: %v", err)
	}
	if got := s.Items(); len(got) != 0 {
		t.Errorf("Items = %+v, want empty", got)
	}
}

func TestStore_AddMergeProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	products := []catalog.Product{n1, e1, b1}
	want := map[string]int{}
	s := NewStore()
	for i := 0; i < 200; i++ {
		p := products[rng.Intn(len(products))]
		d := 1 + rng.Intn(4)
		if err := s.Add(p, d); err != nil {
			t.Fatalf("Add: %v", err)
		}
		want[p.ID] += d
	}
	seen := map[string]bool{}
	for _, l := range s.Items() {
		if seen[l.Product.ID] {
			t.Fatalf("duplicate line for %s", l.Product.ID)
		}
		seen[l.Product.ID] = true
		if l.Quantity != want[l.Product.ID] {
			t.Errorf("%s quantity = %d, want %d", l.Product.ID, l.Quantity, want[l.Product.ID])
		}
	}
	if len(seen) != len(want) {
		t.Errorf("lines = %d, want %d", len(seen), len(want))
	}
}

func TestStore_InsertionOrder(t *testing.T) {
	s := NewStore()
	_ = s.Add(e1, 1)
	_ = s.Add(n1, 1)
	_ = s.Add(b1, 1)
	_ = s.Add(e1, 3)
	_ = s.SetQuantity("n1", 0)
	items := s.Items()
	if len(items) != 2 || items[0].Product.ID != "e1" || items[1].Product.ID != "b1" {
		t.Fatalf("Items = %+v, want [e1 b1]", items)
	}
	// Index must survive the removal in the middle.
	if err := s.SetQuantity("b1", 5); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if got := s.Quantity("b1"); got != 5 {
		t.Errorf("Quantity(b1) = %d, want 5", got)
	}
}

func TestStore_SetQuantityErrors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		qty  int
		want error
	}{
		{"unknown id nonzero", "ghost", 3, errs.ErrInvalidState},
		{"negative", "n1", -1, errs.ErrValidation},
		{"unknown id zero", "ghost", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			_ = s.Add(n1, 2)
			err := s.SetQuantity(tt.id, tt.qty)
			if tt.want == nil {
				if err != nil {
					t.Errorf("SetQuantity = %v, want nil", err)
				}
			} else if !errors.Is(err, tt.want) {
				t.Errorf("SetQuantity = %v, want %v", err, tt.want)
			}
			items := s.Items()
			if len(items) != 1 || items[0].Quantity != 2 {
				t.Errorf("Items = %+v, want untouched [{n1 2}]", items)
			}
		})
	}
}

func TestStore_AddRejectsNonPositive(t *testing.T) {
	s := NewStore()
	for _, d := range []int{0, -2} {
		if err := s.Add(n1, d); !errors.Is(err, errs.ErrValidation) {
			t.Errorf("Add(%d) = %v, want validation error", d, err)
		}
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestStore_Totals(t *testing.T) {
	s := NewStore()
	_ = s.Add(n1, 2)
	_ = s.Add(b1, 1)
	if got := s.Subtotal(); got != 205 {
		t.Errorf("Subtotal = %v, want 205", got)
	}
	if got := s.Count(); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}
	s.Clear()
	if s.Len() != 0 || s.Subtotal() != 0 {
		t.Error("Clear did not empty the store")
	}
}

func TestStore_AddAllIsAtomic(t *testing.T) {
	s := NewStore()
	n1 := catalog.Product{ID: "n1", Price: 75}
	e1 := catalog.Product{ID: "e1", Price: 65}
	if err := s.Add(n1, 1); err != nil {
		t.Fatal(err)
	}

	err := s.AddAll([]catalog.Product{e1, {ID: "", Price: 10}, n1}, 1)
	if !errors.Is(err, errs.ErrValidation) {
		t.Fatalf("AddAll with blank id = %v, want validation error", err)
	}
	if s.Len() != 1 || s.Quantity("n1") != 1 || s.Quantity("e1") != 0 {
		t.Errorf("cart changed by failed AddAll: %+v", s.Items())
	}

	if err := s.AddAll([]catalog.Product{e1, n1}, 1); err != nil {
		t.Fatalf("AddAll: %v", err)
	}
	if s.Quantity("n1") != 2 || s.Quantity("e1") != 1 {
		t.Errorf("quantities n1=%d e1=%d, want 2 and 1", s.Quantity("n1"), s.Quantity("e1"))
	}
	if err := s.AddAll([]catalog.Product{e1}, 0); !errors.Is(err, errs.ErrValidation) {
		t.Errorf("AddAll delta 0 = %v, want validation error", err)
	}
}
