package admin

import (
	"net/http"
	"strconv"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListMessages 留言列表
func (h *Handler) ListMessages(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.MessageListFilter{
		Page:       page,
		PageSize:   pageSize,
		UnreadOnly: c.Query("unread") == "true",
	}

	messages, total, err := h.MessageService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch messages", err)
		return
	}

	response.OKWithPage(c, messages, response.NewPagination(page, pageSize, total))
}

// GetMessage 留言详情
func (h *Handler) GetMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid message id", nil)
		return
	}

	message, err := h.MessageService.Get(uint(id))
	if err != nil {
		respondWithMappedError(c, err, messageErrorRules, http.StatusInternalServerError, "failed to fetch message")
		return
	}

	response.OK(c, message)
}

// MarkMessageRead 标记留言为已读
func (h *Handler) MarkMessageRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid message id", nil)
		return
	}

	message, err := h.MessageService.MarkRead(uint(id))
	if err != nil {
		respondWithMappedError(c, err, messageErrorRules, http.StatusInternalServerError, "failed to update message")
		return
	}

	response.OK(c, message)
}

// DeleteMessage 删除留言
func (h *Handler) DeleteMessage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid message id", nil)
		return
	}

	if err := h.MessageService.Delete(uint(id)); err != nil {
		respondWithMappedError(c, err, messageErrorRules, http.StatusInternalServerError, "failed to delete message")
		return
	}

	response.OKWithMessage(c, "message deleted", nil)
}
