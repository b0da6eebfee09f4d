package constants

// 订单状态常量（本系统下单后不再流转）
const (
	OrderStatusPlaced = "placed"
)

// 用户角色常量
const (
	UserRoleCustomer = "customer"
)

// 购物车默认加入数量
const DefaultCartAddQuantity = 1

// 上下文键
const (
	ContextKeyRequestID = "request_id"
	ContextKeyUserID    = "user_id"
)

// Redis 键前缀
const (
	CacheKeyCheckoutLock = "checkout:user:%d"
	CacheKeyRateLimit    = "ratelimit:%s"
)
