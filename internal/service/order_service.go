package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/logger"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/queue"
	"github.com/clickcart/backend/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

// OrderItemInput 订单项输入（支付完成后由客户端回传的快照）
type OrderItemInput struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Quantity  int          `json:"quantity"`
}

// CreateOrderInput 创建订单输入
type CreateOrderInput struct {
	UserID          uint
	Items           []OrderItemInput
	TotalAmount     models.Money
	PaymentID       string
	ShippingAddress map[string]interface{}
}

// CreateOrder 支付完成后落库订单
// 订单状态固定为 processing、支付方式固定为 stripe；
// 订单写入与购物车清空在同一事务内完成，且无条件清空该用户
// 的全部购物车，即使订单项只是购物车的子集
func (s *OrderService) CreateOrder(input CreateOrderInput) (*models.Order, error) {
	if input.UserID == 0 || len(input.Items) == 0 {
		return nil, ErrInvalidInput
	}
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity < 1 || strings.TrimSpace(item.Name) == "" {
			return nil, ErrInvalidOrderItem
		}
	}
	if input.TotalAmount.Decimal.Cmp(decimal.Zero) <= 0 {
		return nil, ErrInvalidInput
	}

	items := make([]models.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Name:      strings.TrimSpace(item.Name),
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	order := &models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		Status:          constants.OrderStatusProcessing,
		TotalAmount:     input.TotalAmount,
		PaymentMethod:   constants.PaymentMethodStripe,
		PaymentID:       strings.TrimSpace(input.PaymentID),
		ShippingAddress: models.JSON(input.ShippingAddress),
		Items:           items,
	}

	err := models.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.WithTx(tx).Create(order); err != nil {
			return err
		}
		return s.cartRepo.WithTx(tx).ClearByUser(input.UserID)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_created",
		"order_no", order.OrderNo,
		"user_id", order.UserID,
		"total_amount", order.TotalAmount.String(),
	)

	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  order.Status,
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed", "order_id", order.ID, "error", err)
	}

	return order, nil
}

// ListByUser 获取用户自己的订单
func (s *OrderService) ListByUser(userID uint, page, pageSize int) ([]models.Order, int64, error) {
	if userID == 0 {
		return nil, 0, ErrInvalidInput
	}
	return s.orderRepo.List(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   userID,
	})
}

// GetForUser 获取用户自己的订单详情
func (s *OrderService) GetForUser(userID, orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

// List 管理端获取订单列表
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.List(filter)
}

// Get 管理端获取订单详情
func (s *OrderService) Get(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// UpdateStatus 管理端更新订单状态
// 状态为扁平枚举赋值，任意状态间可直接覆盖，无流转约束
func (s *OrderService) UpdateStatus(orderID uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrInvalidOrderStatus
	}
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if err := s.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	if err := s.queueClient.EnqueueOrderStatusEmail(queue.OrderStatusEmailPayload{
		OrderID: order.ID,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_email_enqueue_failed", "order_id", order.ID, "error", err)
	}

	return order, nil
}

// Delete 管理端删除订单
func (s *OrderService) Delete(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return ErrOrderNotFound
	}
	return s.orderRepo.Delete(orderID)
}

// generateOrderNo 生成订单编号
func generateOrderNo() string {
	return fmt.Sprintf("ORD-%s-%s",
		time.Now().Format("20060102"),
		strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12]),
	)
}
