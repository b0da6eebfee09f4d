package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDBCreatesSQLiteDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	db, err := OpenDB("sqlite", filepath.Join(dir, "eshop.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("sqlite directory should exist: %v", err)
	}
}

func TestEnsureSQLiteDirSkipsMemoryDSN(t *testing.T) {
	for _, dsn := range []string{"", ":memory:", "file:test?mode=memory&cache=shared", "local.db"} {
		if err := ensureSQLiteDir(dsn); err != nil {
			t.Fatalf("dsn %q: unexpected error %v", dsn, err)
		}
	}
}

func TestEnsureDemoUserIsIdempotent(t *testing.T) {
	db, err := OpenDB("sqlite", "file:demo_user?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&User{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	first, err := EnsureDemoUser(db, "shopper", "s3cret-pass")
	if err != nil {
		t.Fatalf("ensure demo user failed: %v", err)
	}
	second, err := EnsureDemoUser(db, " shopper ", "other")
	if err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	if first == 0 || first != second {
		t.Fatalf("demo user should be created once, got %d and %d", first, second)
	}

	var user User
	if err := db.First(&user, first).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret-pass" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestBackfillProductNameSearch(t *testing.T) {
	db, err := OpenDB("sqlite", "file:name_search_backfill?mode=memory&cache=shared", nil)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	product := &Product{CategoryID: 1, Name: "Чай Улун", PriceAmount: MustMoney("5.00")}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	if product.NameSearch != "чай улун" {
		t.Fatalf("hook should fold name, got %q", product.NameSearch)
	}
	// 模拟迁移前写入的历史数据
	if err := db.Model(&Product{}).Where("id = ?", product.ID).UpdateColumn("name_search", "").Error; err != nil {
		t.Fatalf("clear name_search failed: %v", err)
	}

	if err := BackfillProductNameSearch(db); err != nil {
		t.Fatalf("backfill failed: %v", err)
	}
	var reloaded Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.NameSearch != "чай улун" {
		t.Fatalf("backfill want %q got %q", "чай улун", reloaded.NameSearch)
	}
}
