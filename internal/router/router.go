package router

import (
	"fmt"
	"strings"

	"github.com/circuitaura/storefront/internal/cache"
	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/constants"
	adminhandlers "github.com/circuitaura/storefront/internal/http/handlers/admin"
	publichandlers "github.com/circuitaura/storefront/internal/http/handlers/public"
	"github.com/circuitaura/storefront/internal/logger"
	"github.com/circuitaura/storefront/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the route table: public storefront endpoints,
// authenticated account/cart/checkout endpoints and the admin console.
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
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		MessageKey:    "error.rate_limited_wait",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// Uploaded catalog images and resource attachments.
	r.Static("/uploads", "./uploads")

	apiV1 := r.Group("/api/v1")
	{
		// Browsable without an account.
		public := apiV1.Group("/public")
		{
			public.GET("/products", publicHandler.ListProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/products/:id/enquiry", publicHandler.GetProductEnquiry)
			public.GET("/kits", publicHandler.ListKits)
			public.GET("/kits/:id", publicHandler.GetKit)
			public.GET("/kits/:id/enquiry", publicHandler.GetKitEnquiry)
			public.GET("/resources", publicHandler.ListResources)
			public.GET("/resources/:id", publicHandler.GetResource)
			public.GET("/contact", publicHandler.GetContactInfo)
			public.GET("/captcha/config", publicHandler.GetCaptchaConfig)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
			auth.POST("/forgot-password", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.ForgotPassword)
			auth.POST("/reset-password", publicHandler.ResetPassword)
		}

		// Signed-in storefront surface.
		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo))
		{
			user.POST("/auth/logout", publicHandler.Logout)
			user.GET("/me", publicHandler.GetProfile)
			user.PUT("/me/profile", publicHandler.UpdateProfile)
			user.PUT("/me/theme", publicHandler.UpdateTheme)
			user.PUT("/me/password", publicHandler.ChangePassword)

			user.GET("/cart", publicHandler.GetCart)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:kind/:id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.POST("/orders", publicHandler.CreateOrder)
			user.GET("/orders", publicHandler.ListOrders)
			user.GET("/orders/:id", publicHandler.GetOrder)
			user.POST("/orders/:id/cancel", publicHandler.CancelOrder)
			user.DELETE("/orders/:id", publicHandler.DeleteOrder)
		}

		// Console surface, admin role only.
		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RequireAdminMiddleware(c.AuthzService))
		{
			admin.GET("/products", adminHandler.AdminListProducts)
			admin.GET("/products/:id", adminHandler.AdminGetProduct)
			admin.POST("/products", adminHandler.AdminCreateProduct)
			admin.PUT("/products/:id", adminHandler.AdminUpdateProduct)
			admin.DELETE("/products/:id", adminHandler.AdminDeleteProduct)

			admin.GET("/kits", adminHandler.AdminListKits)
			admin.GET("/kits/:id", adminHandler.AdminGetKit)
			admin.POST("/kits", adminHandler.AdminCreateKit)
			admin.PUT("/kits/:id", adminHandler.AdminUpdateKit)
			admin.DELETE("/kits/:id", adminHandler.AdminDeleteKit)

			admin.GET("/resources", adminHandler.AdminListResources)
			admin.GET("/resources/:id", adminHandler.AdminGetResource)
			admin.POST("/resources", adminHandler.AdminCreateResource)
			admin.PUT("/resources/:id", adminHandler.AdminUpdateResource)
			admin.DELETE("/resources/:id", adminHandler.AdminDeleteResource)

			admin.GET("/orders", adminHandler.AdminListOrders)
			admin.GET("/orders/:id", adminHandler.AdminGetOrder)
			admin.PATCH("/orders/:id", adminHandler.AdminUpdateOrderStatus)

			admin.GET("/users", adminHandler.AdminListUsers)
			admin.GET("/users/:id", adminHandler.AdminGetUser)
			admin.PUT("/users/:id/status", adminHandler.AdminUpdateUserStatus)
			admin.PUT("/users/:id/role", adminHandler.AdminUpdateUserRole)

			admin.POST("/upload", adminHandler.UploadFile)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
