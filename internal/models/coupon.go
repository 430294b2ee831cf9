package models

import (
	"time"

	"gorm.io/gorm"
)

// Coupon 优惠券
// code 统一存储为大写；有效 = is_active 且当前时间早于 expires_at
type Coupon struct {
	ID        uint           `gorm:"primarykey" json:"id"`                // 主键
	Code      string         `gorm:"uniqueIndex;not null" json:"code"`    // 优惠码（大写）
	Discount  int            `gorm:"not null" json:"discount"`            // 折扣百分比（1-100）
	ExpiresAt time.Time      `gorm:"index;not null" json:"expires_at"`    // 失效时间
	IsActive  bool           `gorm:"not null" json:"is_active"` // 是否启用；不设列默认值，显式 false 才能落库
	CreatedAt time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间
}

// TableName 指定表名
func (Coupon) TableName() string {
	return "coupons"
}
