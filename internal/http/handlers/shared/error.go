package shared

import (
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/i18n"
	"github.com/eshop-next/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	RespondAppError(c, response.WrapError(code, key, err))
}

// RespondAppError 返回携带附加数据的错误响应。
func RespondAppError(c *gin.Context, appErr *response.AppError) {
	msg := i18n.T(i18n.ResolveLocale(c), appErr.Key)
	if appErr.Err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"path", c.FullPath(),
			"error", appErr.Err,
		)
	}
	if appErr.Data != nil {
		response.ErrorWithData(c, appErr.Code, msg, appErr.Data)
		return
	}
	response.Error(c, appErr.Code, msg)
}
