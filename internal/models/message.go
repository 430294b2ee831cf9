package models

import (
	"time"

	"gorm.io/gorm"
)

// Message 留言表（联系表单）
type Message struct {
	ID        uint           `gorm:"primarykey" json:"id"`                // 主键
	Name      string         `gorm:"not null" json:"name"`                // 留言人姓名
	Email     string         `gorm:"not null;index" json:"email"`         // 留言人邮箱
	Subject   string         `gorm:"type:varchar(200)" json:"subject"`    // 主题
	Content   string         `gorm:"type:text;not null" json:"content"`   // 留言内容
	Read      bool           `gorm:"not null;default:false" json:"read"`  // 是否已读
	CreatedAt time.Time      `gorm:"index" json:"created_at"`             // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                          // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                      // 软删除时间
}

// TableName 指定表名
func (Message) TableName() string {
	return "messages"
}
