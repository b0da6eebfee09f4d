package main

import (
	"flag"
	"os"
	"strings"

	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/provider"
	"github.com/eshop-next/internal/service"

	"github.com/shopspring/decimal"
)

type seedProduct struct {
	Category    string
	Name        string
	Description string
	Price       string
	Stock       int
	ImageURL    string
}

var seedCategories = []string{"Electronics", "Lifestyle", "Accessories"}

var seedProducts = []seedProduct{
	{
		Category:    "Electronics",
		Name:        "Wireless Bluetooth Earphones",
		Description: "High quality sound, long battery life, comfortable to wear",
		Price:       "99.99",
		Stock:       50,
		ImageURL:    "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
	},
	{
		Category:    "Electronics",
		Name:        "Smart Watch",
		Description: "Health monitoring, fitness tracking, message notifications",
		Price:       "199.99",
		Stock:       20,
		ImageURL:    "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
	},
	{
		Category:    "Accessories",
		Name:        "Portable Power Bank",
		Description: "High capacity, fast charging, multi-device compatible",
		Price:       "49.99",
		Stock:       100,
		ImageURL:    "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
	},
	{
		Category:    "Lifestyle",
		Name:        "Multi-function Backpack",
		Description: "Large capacity, waterproof and anti-theft, USB charging port",
		Price:       "79.99",
		Stock:       3,
		ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
	},
	{
		Category:    "Lifestyle",
		Name:        "Ceramic Coffee Mug",
		Description: "Stock badge demo: sold out",
		Price:       "12.50",
		Stock:       0,
	},
}

func main() {
	var restock int
	flag.IntVar(&restock, "restock", -1, "将所有演示商品库存重置为指定值（-1 表示不调整）")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	defer logger.Sync()
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, cfg.Server.Mode, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	c := provider.NewContainer(cfg)

	// 演示用户
	userID, err := models.EnsureDemoUser(models.DB, os.Getenv("ESHOP_DEMO_USERNAME"), os.Getenv("ESHOP_DEMO_PASSWORD"))
	if err != nil {
		stdLog.Fatalf("Failed to ensure demo user: %v", err)
	}
	stdLog.Printf("Demo user id: %d", userID)

	// 添加分类
	categoryIDs, err := ensureCategories(c.CategoryService)
	if err != nil {
		stdLog.Fatalf("Failed to seed categories: %v", err)
	}

	// 添加商品
	for _, item := range seedProducts {
		product, created, err := ensureProduct(c.ProductService, categoryIDs[item.Category], item)
		if err != nil {
			stdLog.Printf("Failed to create product %s: %v", item.Name, err)
			continue
		}
		if created {
			stdLog.Printf("Created product: %s (id=%d)", product.Name, product.ID)
		} else {
			stdLog.Printf("Product already exists: %s", product.Name)
		}
		if restock >= 0 {
			if _, err := c.ProductService.AdjustStock(product.ID, restock); err != nil {
				stdLog.Printf("Failed to restock %s: %v", product.Name, err)
			} else {
				stdLog.Printf("Restocked %s to %d", product.Name, restock)
			}
		}
	}

	stdLog.Printf("Seed completed")
}

func ensureCategories(categories *service.CategoryService) (map[string]uint, error) {
	existing, err := categories.List()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]uint, len(seedCategories))
	for _, cat := range existing {
		ids[cat.Name] = cat.ID
	}
	for i, name := range seedCategories {
		if _, ok := ids[name]; ok {
			continue
		}
		created, err := categories.Create(service.CreateCategoryInput{Name: name, SortOrder: i})
		if err != nil {
			return nil, err
		}
		ids[name] = created.ID
	}
	return ids, nil
}

func ensureProduct(products *service.ProductService, categoryID uint, item seedProduct) (*models.Product, bool, error) {
	matches, _, err := products.Search(service.ProductSearchInput{Keyword: item.Name, CategoryID: categoryID, Page: 1, PageSize: 50})
	if err != nil {
		return nil, false, err
	}
	for i := range matches {
		if strings.EqualFold(matches[i].Name, item.Name) {
			return &matches[i], false, nil
		}
	}
	price, err := decimal.NewFromString(item.Price)
	if err != nil {
		return nil, false, err
	}
	product, err := products.Create(service.CreateProductInput{
		CategoryID:    categoryID,
		Name:          item.Name,
		Description:   item.Description,
		PriceAmount:   price,
		ImageURL:      item.ImageURL,
		StockQuantity: item.Stock,
	})
	if err != nil {
		return nil, false, err
	}
	return product, true, nil
}
