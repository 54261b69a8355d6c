// Package api wires the HTTP transport: routes, middleware, and the
// translation of domain errors into HTTP responses.
package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/webeco/storefront-system/docs"
	"github.com/webeco/storefront-system/internal/api/handler"
	"github.com/webeco/storefront-system/internal/api/middleware"
	"github.com/webeco/storefront-system/internal/core/domain"
	"github.com/webeco/storefront-system/internal/core/service"
	mongodb "github.com/webeco/storefront-system/internal/infrastructure/db/mongo"
	redisdb "github.com/webeco/storefront-system/internal/infrastructure/db/redis"
	"github.com/webeco/storefront-system/internal/infrastructure/queue"
	"github.com/webeco/storefront-system/internal/pkg/config"
	"github.com/webeco/storefront-system/pkg/logger"
)

// NewRouter builds the Echo instance with every route registered. It also
// returns the event dispatcher so the caller can start and stop its workers.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) (*echo.Echo, *queue.Dispatcher) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("webeco"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	cartRepo := mongodb.NewCartRepository(db)
	wishlistRepo := mongodb.NewWishlistRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	eventRepo := mongodb.NewOrderEventRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)

	// --- Services ---
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.Session.TTL)
	sessions := service.NewSessionService(codec, userRepo, service.CookiePolicy{
		Name:     cfg.Session.CookieName,
		MaxAge:   cfg.Session.TTL,
		Insecure: !cfg.Session.Secure,
		SameSite: cfg.Session.SameSiteMode(),
	}, log)
	authService := service.NewAuthService(userRepo)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, log)
	cartService := service.NewCartService(cartRepo, wishlistRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, cartRepo, productRepo, log)
	eventService := service.NewOrderEventService(orderRepo, eventRepo, dedup, log)
	reviewService := service.NewReviewService(reviewRepo, productRepo, log)
	messageService := service.NewMessageService(messageRepo)

	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, sessions)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	cartHandler := handler.NewCartHandler(cartService)
	orderHandler := handler.NewOrderHandler(orderService, dispatcher)
	reviewHandler := handler.NewReviewHandler(reviewService)
	messageHandler := handler.NewMessageHandler(messageService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authed := middleware.Auth(sessions)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Probes, metrics, docs ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/me", authHandler.Me, authed)

	// --- Public catalog ---
	v1.GET("/catalog/categories", catalogHandler.ListCategories)
	v1.GET("/catalog/products", catalogHandler.ListProducts)
	v1.GET("/catalog/products/:slug", catalogHandler.GetProduct)
	v1.GET("/catalog/products/:slug/reviews", reviewHandler.ListReviews)
	v1.POST("/catalog/products/:slug/reviews", reviewHandler.AddReview, authed)

	// --- Cart and wishlist ---
	v1.GET("/cart", cartHandler.GetCart, authed)
	v1.POST("/cart/items", cartHandler.AddItem, authed)
	v1.PUT("/cart/items/:productId", cartHandler.SetQuantity, authed)
	v1.DELETE("/cart/items/:productId", cartHandler.RemoveItem, authed)
	v1.GET("/wishlist", cartHandler.GetWishlist, authed)
	v1.POST("/wishlist", cartHandler.AddToWishlist, authed)
	v1.DELETE("/wishlist/:productId", cartHandler.RemoveFromWishlist, authed)

	// --- Orders ---
	v1.POST("/orders", orderHandler.Checkout, authed)
	v1.GET("/orders", orderHandler.ListOrders, authed)
	v1.GET("/orders/:orderNumber", orderHandler.GetOrder, authed)

	// --- Messages ---
	v1.POST("/messages", messageHandler.Send, authed)
	v1.GET("/messages", messageHandler.ListMine, authed)

	// --- Admin ---
	admin := v1.Group("/admin", authed, adminOnly)
	admin.POST("/categories", catalogHandler.CreateCategory)
	admin.PUT("/categories/:id", catalogHandler.UpdateCategory)
	admin.DELETE("/categories/:id", catalogHandler.DeleteCategory)
	admin.POST("/products", catalogHandler.CreateProduct)
	admin.PUT("/products/:id", catalogHandler.UpdateProduct)
	admin.DELETE("/products/:id", catalogHandler.DeleteProduct)
	admin.GET("/orders", orderHandler.ListAllOrders)
	admin.POST("/orders/events", orderHandler.IngestEvent)
	admin.POST("/orders/events/batch", orderHandler.IngestEventBatch)
	admin.GET("/messages", messageHandler.ListAll)
	admin.POST("/messages/:id/reply", messageHandler.Reply)

	return e, dispatcher
}
