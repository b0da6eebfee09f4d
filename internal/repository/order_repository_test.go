package repository

import (
	"testing"
	"time"

	"github.com/eshop-next/internal/constants"
	"github.com/eshop-next/internal/models"
)

func TestOrderCreateAssignsDetailOrderID(t *testing.T) {
	db := setupRepositoryTestDB(t, "order_create")
	repo := NewOrderRepository(db)

	order := &models.Order{
		UserID:          7,
		Status:          constants.OrderStatusPlaced,
		TotalPrice:      models.MustMoney("25.50"),
		DeliveryAddress: "221B Baker St",
	}
	details := []models.OrderDetail{
		{ProductID: 1, Quantity: 2, UnitPrice: models.MustMoney("10.00")},
		{ProductID: 2, Quantity: 1, UnitPrice: models.MustMoney("5.50")},
	}
	if err := repo.Create(order, details); err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	if order.ID == 0 {
		t.Fatalf("order id should be assigned")
	}

	loaded, err := repo.GetByIDAndUser(order.ID, 7)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if loaded == nil || len(loaded.Details) != 2 {
		t.Fatalf("expected order with two details, got %+v", loaded)
	}
	for _, detail := range loaded.Details {
		if detail.OrderID != order.ID {
			t.Fatalf("detail order id want %d got %d", order.ID, detail.OrderID)
		}
	}
	if loaded.Details[0].UnitPrice.String() != "10.00" {
		t.Fatalf("unit price snapshot mismatch: %s", loaded.Details[0].UnitPrice)
	}
}

func TestOrderGetByIDAndUserRejectsOtherUser(t *testing.T) {
	db := setupRepositoryTestDB(t, "order_owner")
	repo := NewOrderRepository(db)
	order := &models.Order{UserID: 7, Status: constants.OrderStatusPlaced, DeliveryAddress: "A"}
	if err := repo.Create(order, nil); err != nil {
		t.Fatalf("create order failed: %v", err)
	}

	loaded, err := repo.GetByIDAndUser(order.ID, 8)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if loaded != nil {
		t.Fatalf("other user must not see the order")
	}
}

func TestOrderListByUserMostRecentFirst(t *testing.T) {
	db := setupRepositoryTestDB(t, "order_list")
	repo := NewOrderRepository(db)
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		order := &models.Order{
			UserID:          7,
			Status:          constants.OrderStatusPlaced,
			DeliveryAddress: "A",
			TotalPrice:      models.MustMoney("1.00"),
			CreatedAt:       base.Add(offset),
		}
		if err := repo.Create(order, nil); err != nil {
			t.Fatalf("create order %d failed: %v", i, err)
		}
	}
	if err := repo.Create(&models.Order{UserID: 8, Status: constants.OrderStatusPlaced, DeliveryAddress: "B"}, nil); err != nil {
		t.Fatalf("create foreign order failed: %v", err)
	}

	orders, total, err := repo.ListByUser(OrderListFilter{UserID: 7})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 3 || len(orders) != 3 {
		t.Fatalf("expected 3 orders, got total=%d len=%d", total, len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].CreatedAt.Before(orders[i].CreatedAt) {
			t.Fatalf("orders not sorted by created_at desc: %v then %v", orders[i-1].CreatedAt, orders[i].CreatedAt)
		}
	}
	if !orders[0].CreatedAt.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("latest order should come first, got %v", orders[0].CreatedAt)
	}
}
