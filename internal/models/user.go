package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                 // 主键
	Username     string         `gorm:"uniqueIndex;not null" json:"username"` // 用户名
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`    // 邮箱
	PasswordHash string         `gorm:"not null" json:"-"`                    // 密码哈希（不返回给前端）
	Role         string         `gorm:"not null;default:'user'" json:"role"`  // 角色（user/admin）
	Avatar       string         `gorm:"type:varchar(500)" json:"avatar"`      // 头像地址
	TokenVersion uint64         `gorm:"not null;default:0" json:"-"`          // Token 版本（用于全量失效）
	LastLoginAt  *time.Time     `json:"last_login_at"`                        // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`              // 创建时间
	UpdatedAt    time.Time      `gorm:"index" json:"updated_at"`              // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                       // 软删除时间

	CartItems []CartItem `gorm:"foreignKey:UserID" json:"cart_items,omitempty"`          // 购物车项
	Wishlist  []Product  `gorm:"many2many:wishlist_items;" json:"wishlist,omitempty"`    // 心愿单商品
	Orders    []Order    `gorm:"foreignKey:UserID" json:"orders,omitempty"`              // 订单
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}

// IsAdmin 判断是否管理员
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}
