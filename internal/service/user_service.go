package service

import (
	"context"
	"strings"

	"github.com/clickcart/backend/internal/cache"
	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// UserService 用户管理与个人资料服务
type UserService struct {
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
}

// NewUserService 创建用户服务
func NewUserService(userRepo repository.UserRepository, productRepo repository.ProductRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		productRepo: productRepo,
	}
}

// UpdateProfileInput 更新个人资料输入
type UpdateProfileInput struct {
	Username *string
	Email    *string
	Avatar   *string
}

// List 用户列表（管理端）
func (s *UserService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// Get 根据ID获取用户
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// UpdateProfile 更新当前用户资料，用户名邮箱均要求唯一
func (s *UserService) UpdateProfile(userID uint, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			return nil, ErrInvalidInput
		}
		if username != user.Username {
			existing, err := s.userRepo.GetByUsername(username)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrUsernameExists
			}
			user.Username = username
		}
	}
	if input.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if email == "" {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, ErrEmailExists
			}
			user.Email = email
		}
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateRole 更新用户角色（管理端）
func (s *UserService) UpdateRole(id uint, role string) (*models.User, error) {
	if role != constants.RoleUser && role != constants.RoleAdmin {
		return nil, ErrInvalidInput
	}

	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}

	if user.Role != role {
		user.Role = role
		// 变更角色后旧令牌立即失效
		user.TokenVersion++
		if err := s.userRepo.Update(user); err != nil {
			return nil, err
		}
		_ = cache.DelUserAuthState(context.Background(), user.ID)
	}
	return user, nil
}

// Delete 删除用户（管理端）
func (s *UserService) Delete(id uint) error {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if err := s.userRepo.Delete(id); err != nil {
		return err
	}
	_ = cache.DelUserAuthState(context.Background(), id)
	return nil
}

// ListWishlist 获取心愿单商品
func (s *UserService) ListWishlist(userID uint) ([]models.Product, error) {
	return s.userRepo.ListWishlist(userID)
}

// ToggleWishlist 切换心愿单中的商品，返回操作后是否在心愿单内
func (s *UserService) ToggleWishlist(userID, productID uint) (bool, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return false, err
	}
	if product == nil {
		return false, ErrProductNotFound
	}

	in, err := s.userRepo.InWishlist(userID, productID)
	if err != nil {
		return false, err
	}
	if in {
		if err := s.userRepo.RemoveFromWishlist(userID, productID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.userRepo.AddToWishlist(userID, productID); err != nil {
		return false, err
	}
	return true, nil
}
