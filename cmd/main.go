package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/ninokhhh/lunacase/internal/handler"
	mid "github.com/ninokhhh/lunacase/internal/middleware"
	"github.com/ninokhhh/lunacase/internal/model"
	"github.com/ninokhhh/lunacase/internal/store"
	"github.com/ninokhhh/lunacase/pkg/config"
	"github.com/ninokhhh/lunacase/pkg/database"
	"github.com/ninokhhh/lunacase/pkg/jwtutil"
	"github.com/ninokhhh/lunacase/pkg/logger"
	"github.com/ninokhhh/lunacase/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// .env is optional; production sets real environment variables
	_ = godotenv.Load()

	appConfig, err := config.Load("lunacase")
	if err != nil {
		// Can't use the structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	if err := logger.InitLogger(appConfig); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting lunacase", appConfig.LogConfig()...)

	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	jwtUtil := jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(
		&model.User{},
		&model.CartItem{},
		&model.WishlistItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	// First-run seeding; no-op once an admin exists
	if err := store.EnsureDefaultAdmin(db, &appConfig.Admin); err != nil {
		log.Fatal("Failed to ensure default admin", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(mid.RequestID)
	e.Use(mid.Metrics)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.HealthCheck)

	authAPI := e.Group("/api/auth")
	authAPI.POST("/register", handler.Register)
	authAPI.POST("/login", handler.Login)
	authAPI.GET("/me", handler.Me, mid.JWTAuth(jwtUtil))

	cartAPI := e.Group("/api/cart", mid.JWTAuth(jwtUtil))
	cartAPI.GET("", handler.GetCart)
	cartAPI.POST("", handler.AddToCart)
	cartAPI.DELETE("", handler.ClearCart)
	cartAPI.DELETE("/:id", handler.RemoveCartItem)
	cartAPI.POST("/:id/increment", handler.IncrementCartItem)
	cartAPI.POST("/:id/decrement", handler.DecrementCartItem)

	wishlistAPI := e.Group("/api/wishlist", mid.JWTAuth(jwtUtil))
	wishlistAPI.GET("", handler.GetWishlist)
	wishlistAPI.POST("", handler.AddToWishlist)
	wishlistAPI.DELETE("/:id", handler.RemoveWishlistItem)

	orderAPI := e.Group("/api/orders", mid.JWTAuth(jwtUtil))
	orderAPI.GET("", handler.ListOrders)
	orderAPI.GET("/:id", handler.GetOrder)

	e.POST("/api/checkout", handler.Checkout, mid.JWTAuth(jwtUtil))

	adminAPI := e.Group("/api/admin", mid.JWTAuth(jwtUtil), mid.RequireAdmin)
	adminAPI.GET("/users", handler.AdminListUsers)
	adminAPI.GET("/orders", handler.AdminListOrders)

	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
