package admin

import (
	"github.com/clickcart/backend/internal/provider"

	handlershared "github.com/clickcart/backend/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

// Handler 管理端接口处理器入口
type Handler struct {
	*provider.Container
}

// New 创建管理端处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

func respondError(c *gin.Context, status int, message string, err error) {
	handlershared.RespondError(c, status, message, err)
}
