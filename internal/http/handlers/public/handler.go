package public

import "github.com/eshop-next/internal/provider"

// Handler 前台接口处理器入口
// 说明：用户身份来自路由中间件写入的 user_id，本处理器不做鉴权。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
