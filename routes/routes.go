package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/tasteofindiazambia/backend/configs"
	"github.com/tasteofindiazambia/backend/controllers"
	"github.com/tasteofindiazambia/backend/middlewares"
	"github.com/tasteofindiazambia/backend/repository"
	"github.com/tasteofindiazambia/backend/services"
	"github.com/tasteofindiazambia/backend/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config) {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Optional integrations
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	}
	events := services.NewEventPublisher(cfg.KafkaBroker, cfg.KafkaTopic)

	orderHub := ws.NewOrderHub()
	go orderHub.Run()

	// Services
	customerSvc := services.NewCustomerService(customerRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, restRepo, customerSvc, events, orderHub)
	menuSvc := services.NewMenuService(menuRepo, restRepo, cache, cfg.MenuCacheTTL)
	reservationSvc := services.NewReservationService(reservationRepo, restRepo)
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	analyticsSvc := services.NewAnalyticsService(db)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc, cfg.PublicBaseURL)
	adminOrderCtrl := controllers.NewAdminOrderController(orderSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	restCtrl := controllers.NewRestaurantController(restRepo)
	customerCtrl := controllers.NewCustomerController(customerSvc)
	reservationCtrl := controllers.NewReservationController(reservationSvc)
	authCtrl := controllers.NewAuthController(authSvc)
	analyticsCtrl := controllers.NewAnalyticsController(analyticsSvc)

	api := r.Group("/api")

	// Public storefront
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.GET("/restaurants/:id/menu", menuCtrl.FullMenu)
	api.POST("/orders", orderCtrl.Create)
	api.GET("/orders/token/:token", orderCtrl.GetByToken)
	api.GET("/orders/token/:token/qr", orderCtrl.TokenQR)
	api.POST("/reservations", reservationCtrl.Create)

	// Auth
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtrl.Login)
		auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Back office (staff/admin)
	admin := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin", "staff"))
	{
		admin.GET("/orders", adminOrderCtrl.List)
		admin.GET("/orders/:id", adminOrderCtrl.Detail)
		admin.PUT("/orders/:id", adminOrderCtrl.UpdateStatus)

		admin.GET("/menu/items", menuCtrl.ListItems)
		admin.POST("/menu/items", menuCtrl.CreateItem)
		admin.PATCH("/menu/items/:id", menuCtrl.UpdateItem)
		admin.DELETE("/menu/items/:id", menuCtrl.DeleteItem)
		admin.POST("/menu/categories", menuCtrl.CreateCategory)
		admin.PATCH("/menu/categories/:id", menuCtrl.UpdateCategory)
		admin.DELETE("/menu/categories/:id", menuCtrl.DeleteCategory)

		admin.GET("/customers", customerCtrl.List)
		admin.GET("/customers/:id", customerCtrl.Detail)

		admin.GET("/reservations", reservationCtrl.List)
		admin.PUT("/reservations/:id", reservationCtrl.UpdateStatus)

		admin.GET("/analytics/overview", analyticsCtrl.Overview)
	}

	// Admin only
	adminOnly := api.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		adminOnly.POST("/restaurants", restCtrl.Create)
		adminOnly.PATCH("/restaurants/:id", restCtrl.Update)
		adminOnly.POST("/users", authCtrl.CreateUser)
	}

	// Live order feed for the staff dashboard
	r.GET("/ws/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret, "admin", "staff"), orderHub.HandleWebSocket)
}
