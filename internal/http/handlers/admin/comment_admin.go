package admin

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/constants"
	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListComments 评论列表（管理端）
func (h *Handler) ListComments(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	filter := repository.CommentListFilter{
		Page:     page,
		PageSize: pageSize,
	}
	if productID, err := strconv.ParseUint(c.Query("product_id"), 10, 64); err == nil {
		filter.ProductID = uint(productID)
	}
	if userID, err := strconv.ParseUint(c.Query("user_id"), 10, 64); err == nil {
		filter.UserID = uint(userID)
	}

	comments, total, err := h.CommentService.List(filter)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch comments", err)
		return
	}

	response.OKWithPage(c, comments, response.NewPagination(page, pageSize, total))
}

// DeleteComment 删除任意评论（管理端）
func (h *Handler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}

	uid, ok := handlershared.GetContextUint(c, "user_id")
	if !ok {
		return
	}

	if err := h.CommentService.Delete(uint(id), uid, constants.RoleAdmin); err != nil {
		respondWithMappedError(c, err, commentErrorRules, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	response.OKWithMessage(c, "comment deleted", nil)
}
