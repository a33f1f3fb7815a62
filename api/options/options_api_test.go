package options

import (
	"context"
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"companion.GO/api/apitest"
	customService "companion.GO/service/customization"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestOptionsAPI_ImportRequiresDB(t *testing.T) {
	e := apitest.Server(apitest.Deps(t), RegisterOptionRoutes)
	rec := apitest.Do(e, http.MethodPost, "/api/customizations/import", importBody())
	apitest.ExpectStatus(t, rec, http.StatusServiceUnavailable)
}

func TestOptionsAPI_ImportEmpty(t *testing.T) {
	deps := apitest.Deps(t)
	deps.DB = openDB(t)
	e := apitest.Server(deps, RegisterOptionRoutes)
	rec := apitest.Do(e, http.MethodPost, "/api/customizations/import", map[string]interface{}{"items": []interface{}{}})
	apitest.ExpectStatus(t, rec, http.StatusBadRequest)
}

func importBody() map[string]interface{} {
	return map[string]interface{}{
		"items": []customService.ProductCustomization{
			{
				ProductID: "ring-1",
				AvailableOptions: map[string][]customService.Option{
					customService.CategoryMetals: customService.Metals,
				},
				DefaultOptions: map[customService.OptionType]string{customService.TypeMetal: "silver"},
			},
			{ProductID: ""},
			{
				ProductID: "ring-2",
				AvailableOptions: map[string][]customService.Option{
					customService.CategorySizes: customService.Metals,
				},
			},
		},
	}
}

func TestOptionsAPI_Import(t *testing.T) {
	db := openDB(t)
	deps := apitest.Deps(t)
	deps.DB = db
	e := apitest.Server(deps, RegisterOptionRoutes)

	rec := apitest.Do(e, http.MethodPost, "/api/customizations/import", importBody())
	apitest.ExpectStatus(t, rec, http.StatusOK)
	var res ImportResult
	apitest.Decode(t, rec, &res)
	if res.Imported != 1 || res.Skipped != 2 || len(res.Warnings) != 2 {
		t.Fatalf("result = %+v, want 1 imported / 2 skipped", res)
	}

	pc, err := customService.NewRepositorySource(db).Customization(context.Background(), "ring-1")
	if err != nil {
		t.Fatalf("Customization: %v", err)
	}
	if pc.ID != "custom-ring-1" {
		t.Errorf("ID = %q, want custom-ring-1", pc.ID)
	}
	if got := len(pc.AvailableOptions[customService.CategoryMetals]); got != 3 {
		t.Errorf("metals = %d, want 3", got)
	}
	if pc.DefaultOptions[customService.TypeMetal] != "silver" {
		t.Errorf("default metal = %q, want silver", pc.DefaultOptions[customService.TypeMetal])
	}
}
