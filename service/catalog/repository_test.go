package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"companion.GO/core/errs"
)

func catalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestSeed_RepositoryProvider(t *testing.T) {
	db := catalogTestDB(t)
	if err := Seed(db, DefaultGroups(), GroupOrder); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	// Seeding twice must be idempotent.
	if err := Seed(db, DefaultGroups(), GroupOrder); err != nil {
		t.Fatalf("Seed again: %v", err)
	}

	p := NewRepositoryProvider(db)
	groups, err := p.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	want := DefaultGroups()
	for _, key := range GroupOrder {
		got := groups[key]
		if got.Title != want[key].Title {
			t.Errorf("%s title = %q, want %q", key, got.Title, want[key].Title)
		}
		if len(got.Products) != len(want[key].Products) {
			t.Fatalf("%s products = %d, want %d", key, len(got.Products), len(want[key].Products))
		}
		for i := range got.Products {
			if got.Products[i] != want[key].Products[i] {
				t.Errorf("%s[%d] = %+v, want %+v", key, i, got.Products[i], want[key].Products[i])
			}
		}
		if got.Discount == nil || *got.Discount != *want[key].Discount {
			t.Errorf("%s discount = %v, want %v", key, got.Discount, *want[key].Discount)
		}
	}

	prod, err := p.Product(context.Background(), "earring-2")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if prod.Name != "Madelyn Gold Hoops" {
		t.Errorf("Product name = %q, want Madelyn Gold Hoops", prod.Name)
	}
	if _, err := p.Product(context.Background(), "ghost"); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("Product missing = %v, want not found", err)
	}
}

func TestImportCSV(t *testing.T) {
	db := catalogTestDB(t)
	if err := Seed(db, DefaultGroups(), GroupOrder); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	csvData := `id,name,category,price,description,image,group,position,color
necklace-1,Elisa Gold Pendant Necklace,Necklaces,79.50,Updated,https://img/1.jpg,necklaces,0,gold
ring-1,Sadie Ring,Rings,48,New ring,https://img/r.jpg,rings,1,
,No Id,Rings,10,,,rings,2,
ring-2,Bad Price,Rings,abc,,,rings,3,
`
	res, err := ImportCSV(db, strings.NewReader(csvData), ImportOptions{BatchSize: 10})
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.TotalRows != 4 {
		t.Errorf("TotalRows = %d, want 4", res.TotalRows)
	}
	if res.Created != 1 || res.Updated != 1 || res.Skipped != 2 {
		t.Errorf("created/updated/skipped = %d/%d/%d, want 1/1/2", res.Created, res.Updated, res.Skipped)
	}
	if len(res.Warnings) < 3 {
		t.Errorf("Warnings = %v, want unknown column and two skipped rows", res.Warnings)
	}

	p := NewRepositoryProvider(db)
	n1, err := p.Product(context.Background(), "necklace-1")
	if err != nil {
		t.Fatalf("Product: %v", err)
	}
	if n1.Price != 79.5 || n1.Description != "Updated" {
		t.Errorf("necklace-1 = %+v, want price 79.5 and updated description", n1)
	}
	groups, err := p.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	rings, ok := groups["rings"]
	if !ok || len(rings.Products) != 1 || rings.Products[0].ID != "ring-1" {
		t.Errorf("rings group = %+v, want [ring-1]", rings)
	}
}

func TestImportCSV_MissingID(t *testing.T) {
	db := catalogTestDB(t)
	_, err := ImportCSV(db, strings.NewReader("name,price\nx,1\n"), ImportOptions{})
	if err == nil {
		t.Error("ImportCSV without id column: want error")
	}
}
