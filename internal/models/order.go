package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表
// 订单项为下单时刻的快照，total_amount 创建后不再重算
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                       // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                       // 订单编号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                              // 用户ID
	Status          string         `gorm:"index;not null" json:"status"`                               // 订单状态（pending/processing/shipped/delivered/canceled）
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`  // 实付金额
	PaymentMethod   string         `gorm:"type:varchar(50);not null" json:"payment_method"`            // 支付方式
	PaymentID       string         `gorm:"type:varchar(200);index" json:"payment_id"`                  // 支付单号
	ShippingAddress JSON           `gorm:"type:json" json:"shipping_address"`                          // 收货地址
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt       time.Time      `gorm:"index" json:"updated_at"`                                    // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                             // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`   // 下单用户
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
