package router

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/clickcart/backend/internal/cache"
	"github.com/clickcart/backend/internal/config"
	adminhandlers "github.com/clickcart/backend/internal/http/handlers/admin"
	publichandlers "github.com/clickcart/backend/internal/http/handlers/public"
	"github.com/clickcart/backend/internal/http/response"
	"github.com/clickcart/backend/internal/logger"
	"github.com/clickcart/backend/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "cc"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// 公开接口
		api.POST("/auth/register", publicHandler.Register)
		api.POST("/auth/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)

		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)
		api.GET("/products/slug/:slug", publicHandler.GetProductBySlug)
		api.GET("/products/:id/comments", publicHandler.ListProductComments)
		api.GET("/categories", publicHandler.ListCategories)
		api.GET("/categories/:id", publicHandler.GetCategory)

		api.POST("/coupons/validate", publicHandler.ValidateCoupon)
		api.POST("/messages", publicHandler.CreateMessage)

		api.POST("/payments/webhook/stripe", publicHandler.StripeWebhook)

		// 用户接口（需鉴权）
		user := api.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart", publicHandler.AddToCart)
			user.DELETE("/cart/:user_id/:product_id", publicHandler.DeleteFromCart)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/checkout/session", publicHandler.CreateCheckoutSession)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)

			user.POST("/products/:id/comments", publicHandler.CreateComment)
			user.DELETE("/comments/:id", publicHandler.DeleteComment)

			user.GET("/wishlist", publicHandler.ListWishlist)
			user.POST("/wishlist/:product_id", publicHandler.ToggleWishlist)
		}

		// 管理端接口（需管理员角色，演示账号只读）
		admin := api.Group("/admin")
		admin.Use(
			JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo),
			AdminRequiredMiddleware(),
			DemoAdminGuardMiddleware(cfg.Security.DemoAdminEmail),
		)
		{
			admin.GET("/analytics/summary", adminHandler.AnalyticsSummary)
			admin.GET("/analytics/growth", adminHandler.AnalyticsGrowth)
			admin.GET("/analytics/monthly-sales", adminHandler.AnalyticsMonthlySales)
			admin.GET("/analytics/top-categories", adminHandler.AnalyticsTopCategories)

			admin.GET("/products", adminHandler.ListProducts)
			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.POST("/categories", adminHandler.CreateCategory)
			admin.PUT("/categories/:id", adminHandler.UpdateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.GET("/coupons", adminHandler.ListCoupons)
			admin.POST("/coupons", adminHandler.CreateCoupon)
			admin.PUT("/coupons/:id", adminHandler.UpdateCoupon)
			admin.DELETE("/coupons/:id", adminHandler.DeleteCoupon)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.DELETE("/orders/:id", adminHandler.DeleteOrder)

			admin.GET("/users", adminHandler.ListUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id/role", adminHandler.UpdateUserRole)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)

			admin.GET("/messages", adminHandler.ListMessages)
			admin.GET("/messages/:id", adminHandler.GetMessage)
			admin.PUT("/messages/:id/read", adminHandler.MarkMessageRead)
			admin.DELETE("/messages/:id", adminHandler.DeleteMessage)

			admin.GET("/comments", adminHandler.ListComments)
			admin.DELETE("/comments/:id", adminHandler.DeleteComment)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	return r
}
