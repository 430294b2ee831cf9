package service

import (
	"strings"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CategoryInput 创建/更新分类输入
type CategoryInput struct {
	Name  string
	Slug  string
	Image string
}

// List 获取全部分类
func (s *CategoryService) List() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// Get 根据ID获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

// Create 创建分类，名称与 slug 均要求唯一
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if name == "" || slug == "" {
		return nil, ErrInvalidInput
	}

	if count, err := s.categoryRepo.CountByName(name, nil); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrNameExists
	}
	if count, err := s.categoryRepo.CountBySlug(slug, nil); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrSlugExists
	}

	category := &models.Category{Name: name, Slug: slug, Image: input.Image}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update 更新分类
func (s *CategoryService) Update(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if name == "" || slug == "" {
		return nil, ErrInvalidInput
	}

	if count, err := s.categoryRepo.CountByName(name, &id); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrNameExists
	}
	if count, err := s.categoryRepo.CountBySlug(slug, &id); err != nil {
		return nil, err
	} else if count > 0 {
		return nil, ErrSlugExists
	}

	category.Name = name
	category.Slug = slug
	category.Image = input.Image
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类，仍有商品关联时拒绝删除
func (s *CategoryService) Delete(id uint) error {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
