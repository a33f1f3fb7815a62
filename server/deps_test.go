package server

import (
	"context"
	"testing"
	"time"

	"companion.GO/config"
)

func testConfig(source string) *config.Config {
	return &config.Config{
		CatalogSource: source,
		SessionTTL:    time.Minute,
		ThinkMin:      time.Millisecond,
		ThinkMax:      2 * time.Millisecond,
	}
}

func TestBuildDeps_DBSourceSeeds(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/companion.db")
	t.Setenv("GORM_LOG", "off")

	deps, err := BuildDeps(context.Background(), testConfig(config.CatalogSourceDB))
	if err != nil {
		t.Fatalf("BuildDeps: %v", err)
	}
	groups, err := deps.Catalog.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 3 {
		t.Errorf("groups = %d, want 3", len(groups))
	}
	pc, err := deps.Options.Customization(context.Background(), "bracelet-1")
	if err != nil {
		t.Fatalf("Customization: %v", err)
	}
	if pc.DefaultOptions["size"] != "medium" {
		t.Errorf("bracelet default size = %q, want medium", pc.DefaultOptions["size"])
	}
}

func TestBuildDeps_StaticWithoutDB(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	deps, err := BuildDeps(context.Background(), testConfig(config.CatalogSourceStatic))
	if err != nil {
		t.Fatalf("BuildDeps: %v", err)
	}
	if deps.DB != nil {
		t.Error("DB set with an unsupported driver")
	}
	s, err := deps.Sessions.Create(context.Background())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer deps.Sessions.Delete(s.ID())
}

func TestBuildDeps_Errors(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	if _, err := BuildDeps(context.Background(), testConfig(config.CatalogSourceDB)); err == nil {
		t.Error("db source without database: want error")
	}
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", t.TempDir()+"/x.db")
	t.Setenv("GORM_LOG", "off")
	if _, err := BuildDeps(context.Background(), testConfig("csv")); err == nil {
		t.Error("unknown source: want error")
	}
}
