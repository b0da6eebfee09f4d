package public

import (
	handlershared "github.com/eshop-next/internal/http/handlers/shared"
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/repository"
	"github.com/eshop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address"`
}

// PlaceOrder 将购物车提交为订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderService.PlaceOrder(service.PlaceOrderInput{
		UserID:          uid,
		DeliveryAddress: req.DeliveryAddress,
	})
	if err != nil {
		respondPlaceOrderError(c, err)
		return
	}

	handlershared.RequestLog(c).Infow("order_placed",
		"order_id", order.ID,
		"user_id", uid,
		"total_price", order.TotalPrice.String(),
	)
	response.Success(c, order)
}

// ListOrders 获取订单历史，按下单时间倒序
func (h *Handler) ListOrders(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := normalizePagination(c)
	orders, total, err := h.OrderService.ListOrdersByUser(repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   uid,
	})
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}

	response.SuccessWithPage(c, orders, response.BuildPagination(page, pageSize, total))
}

// GetOrder 获取订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseUintParam(c, "id", "error.bad_request")
	if !ok {
		return
	}

	order, err := h.OrderService.GetOrderByUser(orderID, uid)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, order)
}
