package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCanceled   = "canceled"
)

// OrderStatuses 全部合法订单状态
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCanceled,
}

// 支付方式常量
const (
	PaymentMethodStripe = "stripe"
)

// 用户角色常量
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// 队列任务类型常量
const (
	TaskOrderStatusEmail = "order:status_email"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 分页默认值常量
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// 评论评分范围常量
const (
	RatingMin = 1
	RatingMax = 5
)

// IsValidOrderStatus 判断订单状态是否合法
func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
