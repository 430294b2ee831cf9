package service

import (
	"strings"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService 商品业务服务
type ProductService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProductInput 创建/更新商品输入
type CreateProductInput struct {
	Name            string
	Slug            string
	Description     string
	Price           models.Money
	PromoPercentage int
	Images          []string
	Stock           int
	CategoryID      uint
	Featured        bool
}

// List 获取商品列表
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Get 根据ID获取商品
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// GetBySlug 根据 slug 获取商品
func (s *ProductService) GetBySlug(slug string) (*models.Product, error) {
	product, err := s.productRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountBySlug(input.Slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product := &models.Product{
		Name:            strings.TrimSpace(input.Name),
		Slug:            strings.TrimSpace(input.Slug),
		Description:     input.Description,
		Price:           input.Price,
		PromoPercentage: input.PromoPercentage,
		Images:          models.StringArray(input.Images),
		Stock:           input.Stock,
		CategoryID:      input.CategoryID,
		Featured:        input.Featured,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input CreateProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	count, err := s.productRepo.CountBySlug(input.Slug, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Slug = strings.TrimSpace(input.Slug)
	product.Description = input.Description
	product.Price = input.Price
	product.PromoPercentage = input.PromoPercentage
	product.Images = models.StringArray(input.Images)
	product.Stock = input.Stock
	product.CategoryID = input.CategoryID
	product.Featured = input.Featured

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

// validateInput 校验商品输入
// 价格必须大于 0；折扣百分比取值 0 或 1-99
func (s *ProductService) validateInput(input CreateProductInput) error {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Slug) == "" {
		return ErrInvalidInput
	}
	if input.Price.Decimal.Cmp(decimal.Zero) <= 0 {
		return ErrInvalidInput
	}
	if input.PromoPercentage < 0 || input.PromoPercentage > 99 {
		return ErrInvalidInput
	}
	if input.CategoryID == 0 {
		return ErrInvalidInput
	}
	category, err := s.categoryRepo.GetByID(input.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}
	return nil
}
