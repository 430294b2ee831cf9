package public

import (
	"net/http"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateMessageRequest 站内留言请求
type CreateMessageRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Content string `json:"content" binding:"required"`
}

var messageErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidInput, status: http.StatusBadRequest, message: "invalid message"},
	{target: service.ErrInvalidEmail, status: http.StatusBadRequest, message: "invalid email address"},
}

// CreateMessage 提交站内留言（无需登录）
func (h *Handler) CreateMessage(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid message", err)
		return
	}

	message, err := h.MessageService.Create(service.CreateMessageInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Content: req.Content,
	})
	if err != nil {
		respondWithMappedError(c, err, messageErrorRules, http.StatusInternalServerError, "failed to submit message")
		return
	}

	response.Created(c, "message received", message)
}
