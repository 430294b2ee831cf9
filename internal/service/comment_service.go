package service

import (
	"strings"

	"github.com/clickcart/backend/internal/constants"
	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// CommentService 商品评论服务
type CommentService struct {
	commentRepo repository.CommentRepository
	productRepo repository.ProductRepository
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo repository.CommentRepository, productRepo repository.ProductRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		productRepo: productRepo,
	}
}

// CreateCommentInput 创建评论输入
type CreateCommentInput struct {
	UserID    uint
	ProductID uint
	Content   string
	Rating    int
}

// ListByProduct 获取商品评论
func (s *CommentService) ListByProduct(productID uint) ([]models.Comment, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.commentRepo.ListByProduct(productID)
}

// List 评论列表（管理端）
func (s *CommentService) List(filter repository.CommentListFilter) ([]models.Comment, int64, error) {
	return s.commentRepo.List(filter)
}

// Create 发表评论，评分限定 1-5
func (s *CommentService) Create(input CreateCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrInvalidInput
	}
	if input.Rating < constants.RatingMin || input.Rating > constants.RatingMax {
		return nil, ErrInvalidInput
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	comment := &models.Comment{
		UserID:    input.UserID,
		ProductID: input.ProductID,
		Content:   strings.TrimSpace(input.Content),
		Rating:    input.Rating,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(comment.ID)
}

// Delete 删除评论，仅作者本人或管理员可删
func (s *CommentService) Delete(id uint, callerID uint, callerRole string) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrNotFound
	}
	if comment.UserID != callerID && callerRole != constants.RoleAdmin {
		return ErrForbidden
	}
	return s.commentRepo.Delete(id)
}
