package repository

import (
	"errors"

	"github.com/clickcart/backend/internal/models"

	"gorm.io/gorm"
)

// MessageRepository 留言数据访问接口
type MessageRepository interface {
	List(filter MessageListFilter) ([]models.Message, int64, error)
	GetByID(id uint) (*models.Message, error)
	Create(message *models.Message) error
	MarkRead(id uint) error
	Delete(id uint) error
}

// GormMessageRepository GORM 实现
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建留言仓库
func NewMessageRepository(db *gorm.DB) *GormMessageRepository {
	return &GormMessageRepository{db: db}
}

// List 获取留言列表
func (r *GormMessageRepository) List(filter MessageListFilter) ([]models.Message, int64, error) {
	query := r.db.Model(&models.Message{})

	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []models.Message
	if err := applyPagination(query.Order("created_at desc"), filter.Page, filter.PageSize).
		Find(&messages).Error; err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// GetByID 根据ID获取留言
func (r *GormMessageRepository) GetByID(id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.First(&message, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// Create 创建留言
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// MarkRead 标记留言为已读
func (r *GormMessageRepository) MarkRead(id uint) error {
	return r.db.Model(&models.Message{}).Where("id = ?", id).Update("read", true).Error
}

// Delete 删除留言
func (r *GormMessageRepository) Delete(id uint) error {
	return r.db.Delete(&models.Message{}, id).Error
}
