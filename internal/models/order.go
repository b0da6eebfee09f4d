package models

import "time"

// Order 订单表，创建后不再变更
type Order struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                     // 主键
	UserID          uint      `gorm:"index;not null" json:"user_id"`                            // 用户ID
	Status          string    `gorm:"type:varchar(20);index;not null" json:"status"`            // 订单状态
	TotalPrice      Money     `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"` // 订单总额
	DeliveryAddress string    `gorm:"type:varchar(500);not null" json:"delivery_address"`       // 收货地址
	CreatedAt       time.Time `gorm:"index" json:"created_at"`                                  // 下单时间
	UpdatedAt       time.Time `json:"updated_at"`                                               // 更新时间

	Details []OrderDetail `gorm:"foreignKey:OrderID" json:"details,omitempty"` // 订单明细
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderDetail 订单明细，单价为下单时快照
type OrderDetail struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                        // 商品ID
	Quantity  int       `gorm:"not null" json:"quantity"`                                // 数量
	UnitPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 下单时单价
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                 // 创建时间
}

// TableName 指定表名
func (OrderDetail) TableName() string {
	return "order_details"
}
