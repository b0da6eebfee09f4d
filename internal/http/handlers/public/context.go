package public

import (
	"github.com/eshop-next/internal/constants"
	handlershared "github.com/eshop-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, constants.ContextKeyUserID, "error.user_invalid", "error.internal_error")
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func normalizePagination(c *gin.Context) (int, int) {
	return handlershared.ParsePagination(c)
}
