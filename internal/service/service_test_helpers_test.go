package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type serviceFixture struct {
	db       *gorm.DB
	products *ProductService
	carts    *CartService
	orders   *OrderService
}

func setupServiceFixture(t *testing.T, name string) *serviceFixture {
	t.Helper()
	cache.UseClient(nil, "")

	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate models failed: %v", err)
	}

	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	return &serviceFixture{
		db:       db,
		products: NewProductService(productRepo, categoryRepo),
		carts:    NewCartService(cartRepo, productRepo),
		orders:   NewOrderService(orderRepo, cartRepo, productRepo, time.Second),
	}
}

func (f *serviceFixture) createProduct(t *testing.T, name, price string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		CategoryID:    1,
		Name:          name,
		PriceAmount:   models.MustMoney(price),
		StockQuantity: stock,
	}
	if err := f.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (f *serviceFixture) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	if err := f.db.Model(model).Count(&count).Error; err != nil {
		t.Fatalf("count rows failed: %v", err)
	}
	return count
}

func (f *serviceFixture) cartQuantity(t *testing.T, userID, productID uint) int {
	t.Helper()
	var item models.CartItem
	if err := f.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&item).Error; err != nil {
		t.Fatalf("load cart line failed: %v", err)
	}
	return item.Quantity
}

var (
	cartItemModel    = models.CartItem{}
	orderModel       = models.Order{}
	orderDetailModel = models.OrderDetail{}
)
