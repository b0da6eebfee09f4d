package router

import (
	"fmt"

	"github.com/eshop-next/internal/cache"
	"github.com/eshop-next/internal/config"
	"github.com/eshop-next/internal/constants"
	publichandlers "github.com/eshop-next/internal/http/handlers/public"
	"github.com/eshop-next/internal/http/response"
	"github.com/eshop-next/internal/logger"
	"github.com/eshop-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// healthPath 探活接口，不写访问日志
const healthPath = "/api/v1/health"

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	checkoutRule := RateLimitRule{
		Prefix:        cache.BuildKey(fmt.Sprintf(constants.CacheKeyRateLimit, "checkout")),
		WindowSeconds: cfg.Checkout.RateLimit.WindowSeconds,
		MaxRequests:   cfg.Checkout.RateLimit.MaxRequests,
		MessageKey:    "error.checkout_too_many",
	}
	redisClient := cache.Client()
	if !cfg.Checkout.RateLimit.Enabled {
		redisClient = nil
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(AccessLogMiddleware(log, healthPath))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/health", func(ctx *gin.Context) {
			response.Success(ctx, gin.H{"status": "ok"})
		})

		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
		}

		// 用户接口（用户由路径指定）
		user := apiV1.Group("/users/:user_id")
		user.Use(UserPathMiddleware(c.UserRepo))
		{
			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:product_id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/orders", RateLimitMiddleware(redisClient, checkoutRule, KeyByUserID), publicHandler.PlaceOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
		}
	}

	return r
}
