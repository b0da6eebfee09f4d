package service

import (
	"strings"

	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品目录服务，每次查询都直接读库
type ProductService struct {
	repo         repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{repo: repo, categoryRepo: categoryRepo}
}

// ProductSearchInput 商品搜索条件，均为可选
type ProductSearchInput struct {
	Keyword    string
	CategoryID uint
	Page       int
	PageSize   int
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	CategoryID    uint
	Name          string
	Description   string
	PriceAmount   decimal.Decimal
	ImageURL      string
	StockQuantity int
}

// GetByID 获取商品详情
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Search 按名称（不区分大小写）与分类搜索商品，条件为空时返回全部
func (s *ProductService) Search(input ProductSearchInput) ([]models.Product, int64, error) {
	products, total, err := s.repo.List(repository.ProductListFilter{
		Page:       input.Page,
		PageSize:   input.PageSize,
		CategoryID: input.CategoryID,
		Search:     strings.TrimSpace(input.Keyword),
	})
	if err != nil {
		return nil, 0, ErrProductFetchFailed
	}
	return products, total, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if input.PriceAmount.IsNegative() {
		return nil, ErrInvalidPrice
	}
	if input.StockQuantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if input.CategoryID > 0 && s.categoryRepo != nil {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
	}

	product := models.Product{
		CategoryID:    input.CategoryID,
		Name:          name,
		Description:   strings.TrimSpace(input.Description),
		PriceAmount:   models.NewMoneyFromDecimal(input.PriceAmount),
		ImageURL:      strings.TrimSpace(input.ImageURL),
		StockQuantity: input.StockQuantity,
	}
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdjustStock 外部库存调整，覆盖为指定值；购物车流程不会调用
func (s *ProductService) AdjustStock(productID uint, stock int) (*models.Product, error) {
	if stock < 0 {
		return nil, ErrInvalidQuantity
	}
	affected, err := s.repo.UpdateStock(productID, stock)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrProductNotFound
	}
	return s.GetByID(productID)
}
