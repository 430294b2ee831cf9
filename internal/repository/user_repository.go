package repository

import (
	"errors"
	"strings"

	"github.com/clickcart/backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	List(filter UserListFilter) ([]models.User, int64, error)
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
	ListWishlist(userID uint) ([]models.Product, error)
	AddToWishlist(userID, productID uint) error
	RemoveFromWishlist(userID, productID uint) error
	InWishlist(userID, productID uint) (bool, error)
}

// GormUserRepository GORM 实现
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓库
func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// List 获取用户列表
func (r *GormUserRepository) List(filter UserListFilter) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}
	if role := strings.TrimSpace(filter.Role); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := applyPagination(query.Order("created_at desc"), filter.Page, filter.PageSize).
		Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

// GetByID 根据ID获取用户
func (r *GormUserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取用户
func (r *GormUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername 根据用户名获取用户
func (r *GormUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create 创建用户
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// Update 更新用户
func (r *GormUserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// Delete 删除用户
func (r *GormUserRepository) Delete(id uint) error {
	return r.db.Delete(&models.User{}, id).Error
}

// Count 统计用户总数
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Count(&count).Error
	return count, err
}

// ListWishlist 获取用户心愿单商品
func (r *GormUserRepository) ListWishlist(userID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Model(&models.User{ID: userID}).Association("Wishlist").Find(&products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// AddToWishlist 添加商品到心愿单
func (r *GormUserRepository) AddToWishlist(userID, productID uint) error {
	return r.db.Model(&models.User{ID: userID}).Association("Wishlist").Append(&models.Product{ID: productID})
}

// RemoveFromWishlist 从心愿单移除商品
func (r *GormUserRepository) RemoveFromWishlist(userID, productID uint) error {
	return r.db.Model(&models.User{ID: userID}).Association("Wishlist").Delete(&models.Product{ID: productID})
}

// InWishlist 判断商品是否已在心愿单
func (r *GormUserRepository) InWishlist(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Table("wishlist_items").
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}
