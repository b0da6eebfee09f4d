package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"

	"gorm.io/gorm"
)

// OrderService 下单与订单查询服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	lockTTL     time.Duration
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, lockTTL time.Duration) *OrderService {
	if lockTTL <= 0 {
		lockTTL = 10 * time.Second
	}
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		lockTTL:     lockTTL,
	}
}

// PlaceOrderInput 下单输入
type PlaceOrderInput struct {
	UserID          uint
	DeliveryAddress string
}

// PlaceOrder 将用户购物车转为订单。
// 读取购物车、校验库存、写订单与明细、清空购物车在同一事务内完成，任一步失败整体回滚。
func (s *OrderService) PlaceOrder(input PlaceOrderInput) (*models.Order, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidUser
	}

	ctx := context.Background()
	lock, acquired, err := cache.AcquireCheckoutLock(ctx, input.UserID, s.lockTTL)
	if err != nil {
		// Redis 不可用时仍由事务保证一致性
		logger.Warnw("checkout_lock_acquire_failed", "user_id", input.UserID, "error", err)
	} else if !acquired {
		return nil, ErrCheckoutInProgress
	}
	defer func() {
		if releaseErr := lock.Release(ctx); releaseErr != nil {
			logger.Warnw("checkout_lock_release_failed", "user_id", input.UserID, "error", releaseErr)
		}
	}()

	var order *models.Order
	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		orderRepo := s.orderRepo.WithTx(tx)

		items, err := cartRepo.ListByUser(input.UserID)
		if err != nil {
			return err
		}
		lines := cartLinesFromItems(items)
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		address := strings.TrimSpace(input.DeliveryAddress)
		if address == "" {
			return ErrInvalidAddress
		}
		if err := s.revalidateStock(s.productRepo.WithTx(tx), lines); err != nil {
			return err
		}

		order = &models.Order{
			UserID:          input.UserID,
			Status:          constants.OrderStatusPlaced,
			TotalPrice:      CalculateTotal(priceLinesOf(lines)),
			DeliveryAddress: address,
		}
		details := make([]models.OrderDetail, 0, len(lines))
		for _, line := range lines {
			details = append(details, models.OrderDetail{
				ProductID: line.Product.ID,
				Quantity:  line.Quantity,
				UnitPrice: line.Product.PriceAmount,
			})
		}
		if err := orderRepo.Create(order, details); err != nil {
			return err
		}
		return cartRepo.ClearByUser(input.UserID)
	})
	if err != nil {
		if errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrInvalidAddress) {
			return nil, err
		}
		var stockErr *InsufficientStockError
		if errors.As(err, &stockErr) {
			return nil, stockErr
		}
		return nil, ErrOrderCreateFailed
	}
	return order, nil
}

// revalidateStock 在事务内重新读取库存，购物车写入后库存可能已被外部调整
func (s *OrderService) revalidateStock(productRepo repository.ProductRepository, lines []CartLine) error {
	for _, line := range lines {
		product, err := productRepo.GetByID(line.Product.ID)
		if err != nil {
			return err
		}
		if product == nil {
			return &InsufficientStockError{ProductID: line.Product.ID, Requested: line.Quantity, Available: 0}
		}
		if err := checkStock(product.ID, line.Quantity, product.StockQuantity); err != nil {
			return err
		}
	}
	return nil
}
