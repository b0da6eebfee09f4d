package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepositoryTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}
	return db
}

func createTestProduct(t *testing.T, db *gorm.DB, categoryID uint, name, price string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    categoryID,
		Name:          name,
		PriceAmount:   models.MustMoney(price),
		StockQuantity: stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func productNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func TestProductListFilters(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_list")
	repo := NewProductRepository(db)

	createTestProduct(t, db, 1, "Green Tea", "4.00", 10)
	createTestProduct(t, db, 2, "Black TEA Bags", "6.50", 5)
	createTestProduct(t, db, 1, "Coffee Beans", "12.00", 3)

	all, total, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 3 || len(all) != 3 {
		t.Fatalf("expected full catalog, got total=%d len=%d", total, len(all))
	}
	if all[0].Name != "Green Tea" || all[2].Name != "Coffee Beans" {
		t.Fatalf("expected insertion order, got %v", productNames(all))
	}

	byName, _, err := repo.List(ProductListFilter{Search: "tea"})
	if err != nil {
		t.Fatalf("search by name failed: %v", err)
	}
	if len(byName) != 2 {
		t.Fatalf("case-insensitive search want 2 got %v", productNames(byName))
	}

	combined, _, err := repo.List(ProductListFilter{Search: "TEA", CategoryID: 1})
	if err != nil {
		t.Fatalf("combined search failed: %v", err)
	}
	if len(combined) != 1 || combined[0].Name != "Green Tea" {
		t.Fatalf("combined filter mismatch: %v", productNames(combined))
	}

	byCategory, _, err := repo.List(ProductListFilter{CategoryID: 2})
	if err != nil {
		t.Fatalf("category filter failed: %v", err)
	}
	if len(byCategory) != 1 || byCategory[0].Name != "Black TEA Bags" {
		t.Fatalf("category filter mismatch: %v", productNames(byCategory))
	}
}

func TestProductListTreatsWildcardsLiterally(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_wildcard")
	repo := NewProductRepository(db)
	createTestProduct(t, db, 1, "100% Cotton Shirt", "20.00", 2)
	createTestProduct(t, db, 1, "Cotton Socks", "3.00", 2)

	products, _, err := repo.List(ProductListFilter{Search: "0%"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].Name != "100% Cotton Shirt" {
		t.Fatalf("wildcard should be literal, got %v", productNames(products))
	}
}

func TestProductListSearchFoldsNonASCII(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_cyrillic")
	repo := NewProductRepository(db)
	coffee := createTestProduct(t, db, 1, "Кофе Арабика", "12.00", 3)
	createTestProduct(t, db, 1, "Coffee Beans", "9.00", 3)

	for _, keyword := range []string{"кофе", "КОФЕ", "Кофе", "арабика"} {
		products, total, err := repo.List(ProductListFilter{Search: keyword})
		if err != nil {
			t.Fatalf("search %q failed: %v", keyword, err)
		}
		if total != 1 || len(products) != 1 || products[0].ID != coffee.ID {
			t.Fatalf("search %q want [Кофе Арабика] got total=%d %v", keyword, total, productNames(products))
		}
	}

	products, total, err := repo.List(ProductListFilter{Search: "COFFEE"})
	if err != nil {
		t.Fatalf("ascii search failed: %v", err)
	}
	if total != 1 || products[0].Name != "Coffee Beans" {
		t.Fatalf("ascii search want [Coffee Beans] got %v", productNames(products))
	}

	// 改库存不应影响检索列
	if _, err := repo.UpdateStock(coffee.ID, 0); err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if _, total, _ := repo.List(ProductListFilter{Search: "КОФЕ"}); total != 1 {
		t.Fatalf("search after restock want 1 got %d", total)
	}
}

func TestProductListPagination(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_page")
	repo := NewProductRepository(db)
	for i := 0; i < 5; i++ {
		createTestProduct(t, db, 1, fmt.Sprintf("Item %d", i), "1.00", 1)
	}

	page, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 2})
	if err != nil {
		t.Fatalf("paged list failed: %v", err)
	}
	if total != 5 {
		t.Fatalf("total want 5 got %d", total)
	}
	if len(page) != 2 || page[0].Name != "Item 2" {
		t.Fatalf("unexpected page content: %v", productNames(page))
	}
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_missing")
	repo := NewProductRepository(db)

	product, err := repo.GetByID(999)
	if err != nil {
		t.Fatalf("get missing product should not error: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil product, got %+v", product)
	}
}

func TestProductSoftDeleteHidesFromCatalog(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_soft_delete")
	repo := NewProductRepository(db)
	product := createTestProduct(t, db, 1, "Retired", "1.00", 1)
	if err := db.Delete(product).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil || got != nil {
		t.Fatalf("soft deleted product should be absent, got=%v err=%v", got, err)
	}
	list, _, err := repo.List(ProductListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("soft deleted product listed: %v", productNames(list))
	}
}

func TestProductUpdateStock(t *testing.T) {
	db := setupRepositoryTestDB(t, "product_stock")
	repo := NewProductRepository(db)
	product := createTestProduct(t, db, 1, "Mug", "8.00", 4)

	affected, err := repo.UpdateStock(product.ID, 1)
	if err != nil {
		t.Fatalf("update stock failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("affected want 1 got %d", affected)
	}
	reloaded, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.StockQuantity != 1 {
		t.Fatalf("stock want 1 got %d", reloaded.StockQuantity)
	}

	affected, err = repo.UpdateStock(12345, 3)
	if err != nil {
		t.Fatalf("update missing stock failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("missing product affected want 0 got %d", affected)
	}
}
