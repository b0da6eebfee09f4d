package service

import (
	"github.com/eshop-next/internal/models"
	"github.com/eshop-next/internal/repository"
)

// ListOrdersByUser 获取用户订单列表，按下单时间倒序
func (s *OrderService) ListOrdersByUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.UserID == 0 {
		return nil, 0, ErrInvalidUser
	}
	orders, total, err := s.orderRepo.ListByUser(filter)
	if err != nil {
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// GetOrderByUser 获取订单详情（含明细）
func (s *OrderService) GetOrderByUser(orderID uint, userID uint) (*models.Order, error) {
	if userID == 0 {
		return nil, ErrInvalidUser
	}
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
