package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表（账号体系不在交易核心内，仅作为购物车与订单的归属）
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                  // 主键
	Username     string         `gorm:"type:varchar(64);uniqueIndex;not null" json:"username"` // 用户名
	PasswordHash string         `gorm:"not null" json:"-"`                                     // 密码哈希
	Role         string         `gorm:"type:varchar(20);default:'customer'" json:"role"`       // 角色
	Phone        string         `gorm:"type:varchar(32)" json:"phone"`                         // 手机号
	Email        string         `gorm:"type:varchar(255)" json:"email"`                        // 邮箱
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                               // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                            // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                        // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
