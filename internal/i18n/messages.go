package i18n

var messages = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":            "请求参数错误",
		"error.internal_error":         "服务器内部错误",
		"error.not_found":              "资源不存在",
		"error.user_invalid":           "用户无效",
		"error.user_not_found":         "用户不存在",
		"error.user_fetch_failed":      "获取用户失败",
		"error.product_not_found":      "商品不存在",
		"error.product_fetch_failed":   "获取商品失败",
		"error.category_not_found":     "分类不存在",
		"error.category_fetch_failed":  "获取分类失败",
		"error.cart_item_not_found":    "购物车中没有该商品",
		"error.cart_fetch_failed":      "获取购物车失败",
		"error.cart_update_failed":     "更新购物车失败",
		"error.quantity_invalid":       "商品数量无效",
		"error.insufficient_stock":     "库存不足",
		"error.cart_empty":             "购物车为空",
		"error.address_invalid":        "收货地址不能为空",
		"error.checkout_in_progress":   "订单正在提交中，请稍后再试",
		"error.order_create_failed":    "订单创建失败",
		"error.order_fetch_failed":     "获取订单失败",
		"error.order_not_found":        "订单不存在",
		"error.rate_limited":           "请求过于频繁，请在 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务暂不可用",
		"error.checkout_too_many":      "下单过于频繁，请在 %d 秒后重试",
	},
	LocaleEnUS: {
		"error.bad_request":            "Invalid request parameters",
		"error.internal_error":         "Internal server error",
		"error.not_found":              "Resource not found",
		"error.user_invalid":           "Invalid user",
		"error.user_not_found":         "User not found",
		"error.user_fetch_failed":      "Failed to load user",
		"error.product_not_found":      "Product not found",
		"error.product_fetch_failed":   "Failed to load product",
		"error.category_not_found":     "Category not found",
		"error.category_fetch_failed":  "Failed to load categories",
		"error.cart_item_not_found":    "Product is not in the cart",
		"error.cart_fetch_failed":      "Failed to load cart",
		"error.cart_update_failed":     "Failed to update cart",
		"error.quantity_invalid":       "Invalid quantity",
		"error.insufficient_stock":     "Insufficient stock",
		"error.cart_empty":             "Cart is empty",
		"error.address_invalid":        "Delivery address is required",
		"error.checkout_in_progress":   "An order is already being placed, please retry shortly",
		"error.order_create_failed":    "Failed to create order",
		"error.order_fetch_failed":     "Failed to load orders",
		"error.order_not_found":        "Order not found",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter unavailable",
		"error.checkout_too_many":      "Too many checkout attempts, retry in %d seconds",
	},
}
