package router

import (
	"github.com/eshop-next/internal/constants"
	handlershared "github.com/eshop-next/internal/http/handlers/shared"
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/repository"

	"github.com/gin-gonic/gin"
)

const userIDParam = "user_id"

// UserPathMiddleware 解析路径中的 user_id，确认用户存在后写入上下文
func UserPathMiddleware(userRepo repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := handlershared.ParseUintParam(c, userIDParam, "error.user_invalid")
		if !ok {
			c.Abort()
			return
		}
		user, err := userRepo.GetByID(userID)
		if err != nil {
			handlershared.RespondError(c, response.CodeInternal, "error.user_fetch_failed", err)
			c.Abort()
			return
		}
		if user == nil {
			handlershared.RespondError(c, response.CodeNotFound, "error.user_not_found", nil)
			c.Abort()
			return
		}
		c.Set(constants.ContextKeyUserID, user.ID)
		c.Next()
	}
}
