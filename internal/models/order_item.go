package models

import "time"

// OrderItem 订单项表
// 商品名称与单价为下单时刻快照，不随商品后续修改变化
type OrderItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                               // 主键
	OrderID   uint      `gorm:"index;not null" json:"order_id"`                     // 订单ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`                   // 商品ID
	Name      string    `gorm:"not null" json:"name"`                               // 商品名称快照
	Price     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 单价快照
	Quantity  int       `gorm:"not null" json:"quantity"`                           // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                            // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
