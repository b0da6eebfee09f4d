package service

import (
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"
)

// CartLine 购物车行视图：商品与加购数量
type CartLine struct {
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal models.Money   `json:"line_total"`
}

// CartSummary 购物车明细与合计
type CartSummary struct {
	Items []CartLine   `json:"items"`
	Total models.Money `json:"total"`
}

// CartService 购物车服务，所有操作显式传入用户ID
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// ListByUser 获取用户购物车，商品已不存在的行直接忽略
func (s *CartService) ListByUser(userID uint) ([]CartLine, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, ErrCartFetchFailed
	}
	return cartLinesFromItems(items), nil
}

// Summary 获取购物车明细与展示合计
func (s *CartService) Summary(userID uint) (*CartSummary, error) {
	lines, err := s.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return &CartSummary{
		Items: lines,
		Total: CalculateTotal(priceLinesOf(lines)),
	}, nil
}

// Total 购物车展示合计，与下单落库金额使用同一计算
func (s *CartService) Total(userID uint) (models.Money, error) {
	summary, err := s.Summary(userID)
	if err != nil {
		return models.Money{}, err
	}
	return summary.Total, nil
}

// Add 加入购物车；已存在时不合并数量，直接返回现有数量
func (s *CartService) Add(userID, productID uint, quantity int) (int, error) {
	if userID == 0 {
		return 0, ErrInvalidUser
	}
	if quantity < 1 {
		return 0, ErrInvalidQuantity
	}
	product, err := s.loadProduct(productID)
	if err != nil {
		return 0, err
	}
	if err := checkStock(product.ID, quantity, product.StockQuantity); err != nil {
		return 0, err
	}

	created, err := s.cartRepo.CreateIfAbsent(&models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
	if err != nil {
		return 0, ErrCartUpdateFailed
	}
	if created {
		return quantity, nil
	}
	existing, err := s.cartRepo.GetByUserAndProduct(userID, productID)
	if err != nil || existing == nil {
		return 0, ErrCartUpdateFailed
	}
	return existing.Quantity, nil
}

// SetQuantity 覆盖购物车行数量，是修改数量的唯一入口
func (s *CartService) SetQuantity(userID, productID uint, quantity int) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	product, err := s.loadProduct(productID)
	if err != nil {
		return err
	}
	if err := checkStock(product.ID, quantity, product.StockQuantity); err != nil {
		return err
	}
	inCart, err := s.Contains(userID, productID)
	if err != nil {
		return err
	}
	if !inCart {
		return ErrCartItemNotFound
	}
	if _, err := s.cartRepo.UpdateQuantity(userID, productID, quantity); err != nil {
		return ErrCartUpdateFailed
	}
	return nil
}

// Remove 删除购物车行，不存在时视为成功
func (s *CartService) Remove(userID, productID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if err := s.cartRepo.DeleteByUserAndProduct(userID, productID); err != nil {
		return ErrCartUpdateFailed
	}
	return nil
}

// Clear 清空用户购物车
func (s *CartService) Clear(userID uint) error {
	if userID == 0 {
		return ErrInvalidUser
	}
	if err := s.cartRepo.ClearByUser(userID); err != nil {
		return ErrCartUpdateFailed
	}
	return nil
}

// Contains 判断商品是否已在用户购物车中
func (s *CartService) Contains(userID, productID uint) (bool, error) {
	if userID == 0 {
		return false, ErrInvalidUser
	}
	exists, err := s.cartRepo.Exists(userID, productID)
	if err != nil {
		return false, ErrCartFetchFailed
	}
	return exists, nil
}

func (s *CartService) loadProduct(productID uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func cartLinesFromItems(items []models.CartItem) []CartLine {
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.ID == 0 {
			continue
		}
		lines = append(lines, CartLine{
			Product:   *item.Product,
			Quantity:  item.Quantity,
			LineTotal: models.NewMoneyFromDecimal(LineTotal(item.Product.PriceAmount.Decimal, item.Quantity)),
		})
	}
	return lines
}

func priceLinesOf(lines []CartLine) []PriceLine {
	priced := make([]PriceLine, 0, len(lines))
	for _, line := range lines {
		priced = append(priced, PriceLine{
			UnitPrice: line.Product.PriceAmount.Decimal,
			Quantity:  line.Quantity,
		})
	}
	return priced
}
