package router

import (
	"fmt"
	"strings"

	"github.com/catalog-next/internal/cache"
	"github.com/catalog-next/internal/config"
	handlershared "github.com/catalog-next/internal/http/handlers/shared"
	publichandlers "github.com/catalog-next/internal/http/handlers/public"
	"github.com/catalog-next/internal/logger"
	"github.com/catalog-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	handlershared.RegisterValidators()
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "catalog"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
		FailClosed:    true,
	}
	couponRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:coupon", redisPrefix),
		WindowSeconds: cfg.Security.CouponRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.CouponRateLimit.MaxAttempts,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		// 商品浏览（可选登录，登录后返回收藏状态）
		catalog := apiV1.Group("")
		catalog.Use(OptionalUserJWTAuthMiddleware(c.UserAuthService))
		{
			catalog.GET("/products", publicHandler.SearchProducts)
			catalog.GET("/products/:id", publicHandler.GetProduct)
		}

		apiV1.GET("/coupons/:code", RateLimitMiddleware(redisClient, couponRule, KeyByIP), publicHandler.CheckCoupon)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(c.UserAuthService))
		{
			user.POST("/products/:id/favorite", publicHandler.FavorProduct)
			user.DELETE("/products/:id/favorite", publicHandler.DisfavorProduct)
			user.GET("/me/favorites", publicHandler.ListFavorites)
			user.POST("/order-items/:id/review", publicHandler.SubmitReview)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
