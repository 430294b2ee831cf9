package service

import (
	"strings"
	"time"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// CouponService 优惠券服务
type CouponService struct {
	couponRepo repository.CouponRepository
}

// NewCouponService 创建优惠券服务
func NewCouponService(couponRepo repository.CouponRepository) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

// Validate 校验优惠码并返回优惠券
// 优惠码不区分大小写，统一按大写查找；
// 有效性仅在此处校验，下单时不再复核
func (s *CouponService) Validate(code string) (*models.Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrCouponNotFound
	}

	coupon, err := s.couponRepo.GetByCode(normalized)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	if time.Now().After(coupon.ExpiresAt) {
		return nil, ErrCouponExpired
	}
	if !coupon.IsActive {
		return nil, ErrCouponInactive
	}
	return coupon, nil
}

// CreateCouponInput 创建/更新优惠券输入
type CreateCouponInput struct {
	Code      string
	Discount  int
	ExpiresAt time.Time
	IsActive  bool
}

// List 获取优惠券列表
func (s *CouponService) List() ([]models.Coupon, error) {
	return s.couponRepo.List()
}

// Create 创建优惠券（优惠码统一存为大写）
func (s *CouponService) Create(input CreateCouponInput) (*models.Coupon, error) {
	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" || input.Discount < 1 || input.Discount > 100 {
		return nil, ErrInvalidInput
	}

	count, err := s.couponRepo.CountByCode(code, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeExists
	}

	coupon := &models.Coupon{
		Code:      code,
		Discount:  input.Discount,
		ExpiresAt: input.ExpiresAt,
		IsActive:  input.IsActive,
	}
	if err := s.couponRepo.Create(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update 更新优惠券
func (s *CouponService) Update(id uint, input CreateCouponInput) (*models.Coupon, error) {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}

	code := strings.ToUpper(strings.TrimSpace(input.Code))
	if code == "" || input.Discount < 1 || input.Discount > 100 {
		return nil, ErrInvalidInput
	}

	count, err := s.couponRepo.CountByCode(code, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCodeExists
	}

	coupon.Code = code
	coupon.Discount = input.Discount
	coupon.ExpiresAt = input.ExpiresAt
	coupon.IsActive = input.IsActive

	if err := s.couponRepo.Update(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Delete 删除优惠券
func (s *CouponService) Delete(id uint) error {
	coupon, err := s.couponRepo.GetByID(id)
	if err != nil {
		return err
	}
	if coupon == nil {
		return ErrCouponNotFound
	}
	return s.couponRepo.Delete(id)
}
