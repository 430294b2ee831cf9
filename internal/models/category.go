package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`             // 主键
	Name      string         `gorm:"uniqueIndex;not null" json:"name"` // 分类名称
	Slug      string         `gorm:"uniqueIndex;not null" json:"slug"` // 唯一标识
	Image     string         `gorm:"type:varchar(500)" json:"image"`   // 分类图片地址
	CreatedAt time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                       // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间

	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"` // 分类下商品
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
