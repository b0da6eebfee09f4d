package public

import (
	"github.com/eshop-next/internal/constants"
	handlershared "github.com/eshop-next/internal/http/handlers/shared"
	"github.com/eshop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求，quantity 缺省为 1
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// UpdateCartItemRequest 修改数量请求
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// GetCart 获取购物车明细与合计
func (h *Handler) GetCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	summary, err := h.CartService.Summary(uid)
	if err != nil {
		respondWithMappedError(c, err, userCommonErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车；已在购物车中时不修改数量
func (h *Handler) AddCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	quantity := constants.DefaultCartAddQuantity
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	current, err := h.CartService.Add(uid, req.ProductID, quantity)
	if err != nil {
		respondCartWriteError(c, err)
		return
	}
	response.Success(c, gin.H{
		"product_id": req.ProductID,
		"quantity":   current,
	})
}

// UpdateCartItem 覆盖购物车行数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.bad_request")
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.quantity_invalid", nil)
		return
	}

	if err := h.CartService.SetQuantity(uid, productID, req.Quantity); err != nil {
		respondCartWriteError(c, err)
		return
	}
	response.Success(c, gin.H{
		"product_id": productID,
		"quantity":   req.Quantity,
	})
}

// DeleteCartItem 删除购物车行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.bad_request")
	if !ok {
		return
	}

	if err := h.CartService.Remove(uid, productID); err != nil {
		respondCartWriteError(c, err)
		return
	}
	response.Success(c, nil)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(uid); err != nil {
		respondCartWriteError(c, err)
		return
	}
	response.Success(c, nil)
}
