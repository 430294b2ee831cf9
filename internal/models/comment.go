package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment 商品评论表
type Comment struct {
	ID        uint           `gorm:"primarykey" json:"id"`             // 主键
	UserID    uint           `gorm:"index;not null" json:"user_id"`    // 用户ID
	ProductID uint           `gorm:"index;not null" json:"product_id"` // 商品ID
	Content   string         `gorm:"type:text;not null" json:"content"` // 评论内容
	Rating    int            `gorm:"not null" json:"rating"`           // 评分（1-5）
	CreatedAt time.Time      `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                       // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                   // 软删除时间

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`       // 评论用户
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
