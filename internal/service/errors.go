package service

import (
	"errors"
	"fmt"
)

// ErrNotFound 资源不存在（商品、购物车行、订单的共同父错误）
var ErrNotFound = errors.New("not found")

var (
	ErrProductNotFound  = fmt.Errorf("product %w", ErrNotFound)
	ErrCategoryNotFound = fmt.Errorf("category %w", ErrNotFound)
	ErrCartItemNotFound = fmt.Errorf("cart item %w", ErrNotFound)
	ErrOrderNotFound    = fmt.Errorf("order %w", ErrNotFound)
)

// 业务错误
var (
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidName        = errors.New("name is blank")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidAddress     = errors.New("delivery address is blank")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// 存储错误
var (
	ErrOrderCreateFailed  = errors.New("order creation failed")
	ErrOrderFetchFailed   = errors.New("order fetch failed")
	ErrProductFetchFailed = errors.New("product fetch failed")
	ErrCartFetchFailed    = errors.New("cart fetch failed")
	ErrCartUpdateFailed   = errors.New("cart update failed")
)

// InsufficientStockError 库存不足，携带商品与可用数量
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d", e.ProductID, e.Requested, e.Available)
}

// Is 使 errors.Is(err, ErrInsufficientStock) 成立
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func checkStock(productID uint, requested, available int) error {
	if requested > available {
		return &InsufficientStockError{ProductID: productID, Requested: requested, Available: available}
	}
	return nil
}
