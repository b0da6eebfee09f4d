package public

import (
	"errors"

	handlershared "github.com/eshop-next/internal/http/handlers/shared"
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	var stockErr *service.InsufficientStockError
	if errors.As(err, &stockErr) {
		handlershared.RespondAppError(c, response.WrapError(response.CodeBadRequest, "error.insufficient_stock", nil).WithData(gin.H{
			"product_id": stockErr.ProductID,
			"requested":  stockErr.Requested,
			"available":  stockErr.Available,
		}))
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var userCommonErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidUser, code: response.CodeBadRequest, key: "error.user_invalid"},
}

var cartWriteErrorRules = concatMappedHandlerErrors(userCommonErrorRules, []mappedHandlerError{
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, key: "error.quantity_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
	{target: service.ErrProductFetchFailed, code: response.CodeInternal, key: "error.product_fetch_failed"},
	{target: service.ErrCartFetchFailed, code: response.CodeInternal, key: "error.cart_fetch_failed"},
})

var placeOrderErrorRules = concatMappedHandlerErrors(userCommonErrorRules, []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrInvalidAddress, code: response.CodeBadRequest, key: "error.address_invalid"},
	{target: service.ErrCheckoutInProgress, code: response.CodeConflict, key: "error.checkout_in_progress"},
})

var orderQueryErrorRules = concatMappedHandlerErrors(userCommonErrorRules, []mappedHandlerError{
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
})

func respondCartWriteError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartWriteErrorRules, response.CodeInternal, "error.cart_update_failed")
}

func respondPlaceOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, placeOrderErrorRules, response.CodeInternal, "error.order_create_failed")
}

func respondOrderQueryError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderQueryErrorRules, response.CodeInternal, "error.order_fetch_failed")
}
