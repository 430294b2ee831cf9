package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                 // 主键
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`                    // 分类ID
	Name            string         `gorm:"not null;index" json:"name"`                           // 商品名称
	Slug            string         `gorm:"uniqueIndex;not null" json:"slug"`                     // 唯一标识
	Description     string         `gorm:"type:text" json:"description"`                         // 商品描述
	Price           Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`   // 标价（必须大于 0）
	PromoPercentage int            `gorm:"not null;default:0" json:"promo_percentage"`           // 折扣百分比（0 表示无折扣，1-99 表示折扣）
	Images          StringArray    `gorm:"type:json" json:"images"`                              // 图片数组
	Stock           int            `gorm:"not null;default:0" json:"stock"`                      // 库存
	Sold            int            `gorm:"not null;default:0" json:"sold"`                       // 已售数量
	Featured        bool           `gorm:"default:false;index" json:"featured"`                  // 是否精选
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                              // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                           // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                       // 软删除时间

	Category Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"` // 分类信息
	Comments []Comment `gorm:"foreignKey:ProductID" json:"comments,omitempty"`  // 商品评论
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// EffectivePrice 折后价（price * (1 - promoPercentage/100)）
func (p *Product) EffectivePrice() Money {
	if p.PromoPercentage <= 0 {
		return p.Price
	}
	factor := decimal.NewFromInt(100 - int64(p.PromoPercentage)).Div(decimal.NewFromInt(100))
	return NewMoneyFromDecimal(p.Price.Decimal.Mul(factor))
}

// PromoUnitCents 折后单价（最小货币单位，向上取整）
// ceil(price * 100 * (1 - promoPercentage/100))，换算始终向上取整避免少收
func (p *Product) PromoUnitCents() int64 {
	cents := p.Price.Decimal.Mul(decimal.NewFromInt(100))
	if p.PromoPercentage > 0 {
		factor := decimal.NewFromInt(100 - int64(p.PromoPercentage)).Div(decimal.NewFromInt(100))
		cents = cents.Mul(factor)
	}
	return cents.Ceil().IntPart()
}
