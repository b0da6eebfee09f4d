package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`                         // 分类ID
	Name          string         `gorm:"type:varchar(255);not null;index" json:"name"`              // 商品名称
	NameSearch    string         `gorm:"type:varchar(255);index" json:"-"`                          // 名称检索列（大小写折叠）
	Description   string         `gorm:"type:text" json:"description"`                              // 商品描述
	PriceAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 单价
	ImageURL      string         `gorm:"type:varchar(512)" json:"image_url"`                        // 图片地址
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`                  // 可售库存
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// BeforeSave 同步名称检索列。sqlite 的 LOWER/LIKE 只折叠 ASCII，检索统一比对折叠后的副本。
func (p *Product) BeforeSave(tx *gorm.DB) error {
	if p.Name != "" {
		p.NameSearch = FoldSearchText(p.Name)
	}
	return nil
}

// FoldSearchText 对检索文本做 Unicode 大小写折叠
func FoldSearchText(text string) string {
	return cases.Fold().String(strings.TrimSpace(text))
}

// BackfillProductNameSearch 为检索列为空的历史商品补齐折叠名称
func BackfillProductNameSearch(db *gorm.DB) error {
	var products []Product
	if err := db.Where("name_search IS NULL OR name_search = ''").Find(&products).Error; err != nil {
		return err
	}
	for i := range products {
		folded := FoldSearchText(products[i].Name)
		if err := db.Model(&Product{}).Where("id = ?", products[i].ID).UpdateColumn("name_search", folded).Error; err != nil {
			return err
		}
	}
	return nil
}
