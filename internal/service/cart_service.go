package service

import (
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// AddToCartInput 加购输入
// Quantity 为 nil 表示调用方未指定数量
type AddToCartInput struct {
	UserID    uint
	ProductID uint
	Quantity  *int
}

// AddToCart 添加或更新购物车项，返回更新后的完整购物车
// 数量语义：新建时缺省为 1；已存在时显式数量直接覆盖，
// 未指定数量则在原数量上加 1
func (s *CartService) AddToCart(input AddToCartInput) ([]models.CartItem, error) {
	if input.UserID == 0 || input.ProductID == 0 {
		return nil, ErrInvalidInput
	}
	if input.Quantity != nil && *input.Quantity < 1 {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	existing, err := s.cartRepo.GetByUserAndProduct(input.UserID, input.ProductID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		quantity := 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		item := &models.CartItem{
			UserID:    input.UserID,
			ProductID: input.ProductID,
			Quantity:  quantity,
		}
		if err := s.cartRepo.Create(item); err != nil {
			return nil, err
		}
	} else {
		quantity := existing.Quantity + 1
		if input.Quantity != nil {
			quantity = *input.Quantity
		}
		if err := s.cartRepo.UpdateQuantity(existing.ID, quantity); err != nil {
			return nil, err
		}
	}

	return s.cartRepo.ListByUser(input.UserID)
}

// ListByUser 获取用户购物车（带商品信息）
func (s *CartService) ListByUser(userID uint) ([]models.CartItem, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.cartRepo.ListByUser(userID)
}

// DeleteFromCart 删除购物车项，返回更新后的完整购物车
// 仅允许本人操作；目标不存在时返回 ErrCartItemNotFound 且状态不变
func (s *CartService) DeleteFromCart(callerID, userID, productID uint) ([]models.CartItem, error) {
	if callerID == 0 || userID == 0 || productID == 0 {
		return nil, ErrInvalidInput
	}
	if callerID != userID {
		return nil, ErrForbidden
	}

	affected, err := s.cartRepo.DeleteByUserAndProduct(userID, productID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}

	return s.cartRepo.ListByUser(userID)
}

// ClearCart 清空用户购物车
func (s *CartService) ClearCart(userID uint) error {
	if userID == 0 {
		return ErrInvalidInput
	}
	return s.cartRepo.ClearByUser(userID)
}
