package service

import (
	"net/mail"
	"strings"

	"github.com/clickcart/backend/internal/models"
	"github.com/clickcart/backend/internal/repository"
)

// MessageService 站内留言服务
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService 创建留言服务
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// CreateMessageInput 创建留言输入
type CreateMessageInput struct {
	Name    string
	Email   string
	Subject string
	Content string
}

// Create 提交留言（无需登录）
func (s *MessageService) Create(input CreateMessageInput) (*models.Message, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	content := strings.TrimSpace(input.Content)
	if name == "" || content == "" {
		return nil, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	message := &models.Message{
		Name:    name,
		Email:   email,
		Subject: strings.TrimSpace(input.Subject),
		Content: content,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}

// List 留言列表（管理端）
func (s *MessageService) List(filter repository.MessageListFilter) ([]models.Message, int64, error) {
	return s.messageRepo.List(filter)
}

// Get 获取单条留言
func (s *MessageService) Get(id uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	return message, nil
}

// MarkRead 标记留言为已读
func (s *MessageService) MarkRead(id uint) (*models.Message, error) {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, ErrNotFound
	}
	if !message.Read {
		if err := s.messageRepo.MarkRead(id); err != nil {
			return nil, err
		}
		message.Read = true
	}
	return message, nil
}

// Delete 删除留言
func (s *MessageService) Delete(id uint) error {
	message, err := s.messageRepo.GetByID(id)
	if err != nil {
		return err
	}
	if message == nil {
		return ErrNotFound
	}
	return s.messageRepo.Delete(id)
}
