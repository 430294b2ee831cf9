package public

import (
	"net/http"
	"strconv"

	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateCommentRequest 发表评论请求
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
}

// ListProductComments 商品评论列表
func (h *Handler) ListProductComments(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	comments, err := h.CommentService.ListByProduct(uint(productID))
	if err != nil {
		respondWithMappedError(c, err, commentErrorRules, http.StatusInternalServerError, "failed to fetch comments")
		return
	}

	response.OK(c, comments)
}

// CreateComment 发表商品评论
func (h *Handler) CreateComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || productID == 0 {
		respondError(c, http.StatusBadRequest, "invalid product id", nil)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid comment", err)
		return
	}

	comment, err := h.CommentService.Create(service.CreateCommentInput{
		UserID:    uid,
		ProductID: uint(productID),
		Content:   req.Content,
		Rating:    req.Rating,
	})
	if err != nil {
		respondWithMappedError(c, err, commentErrorRules, http.StatusInternalServerError, "failed to create comment")
		return
	}

	response.Created(c, "comment created", comment)
}

// DeleteComment 删除评论（作者本人或管理员）
func (h *Handler) DeleteComment(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	commentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		respondError(c, http.StatusBadRequest, "invalid comment id", nil)
		return
	}

	if err := h.CommentService.Delete(uint(commentID), uid, getUserRole(c)); err != nil {
		respondWithMappedError(c, err, commentErrorRules, http.StatusInternalServerError, "failed to delete comment")
		return
	}

	response.OKWithMessage(c, "comment deleted", nil)
}
