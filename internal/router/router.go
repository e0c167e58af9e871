package router // package router defines how HTTP routes are registered for the API

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/Karim-Abdelkareem/techmarket/internal/config"
	"github.com/Karim-Abdelkareem/techmarket/internal/handler"
	"github.com/Karim-Abdelkareem/techmarket/internal/middleware"
	"github.com/Karim-Abdelkareem/techmarket/internal/model"
	"github.com/Karim-Abdelkareem/techmarket/internal/repository"
)

// Register wires every route group onto the Echo instance. All API routes
// live under /api; the health check sits at the root for load balancers.
func Register(e *echo.Echo, cfg config.Config, db *sql.DB, rdb *redis.Client) {
	users := repository.NewUserRepo(db)
	products := repository.NewProductRepo(db)
	dealers := repository.NewDealerRepo(db)
	companies := repository.NewCompanyRepo(db)
	categories := repository.NewCategoryRepo(db)
	carts := repository.NewCartRepo(db)
	reservations := repository.NewReservationRepo(db)
	tradeIns := repository.NewTradeInRepo(db)
	inquiries := repository.NewInquiryRepo(db)
	messages := repository.NewMessageRepo(db)
	sells := repository.NewSellRepo(db)
	analytics := repository.NewAnalyticsRepo(db)

	auth := handler.NewAuthHandler(cfg, users)
	user := handler.NewUserHandler(cfg, users)
	product := handler.NewProductHandler(products)
	dealer := handler.NewDealerHandler(dealers)
	company := handler.NewCompanyHandler(companies)
	category := handler.NewCategoryHandler(categories)
	cart := handler.NewCartHandler(carts, products)
	reservation := handler.NewReservationHandler(reservations, products)
	tradeIn := handler.NewTradeInHandler(tradeIns, dealers, products)
	lead := handler.NewLeadHandler(inquiries, messages, sells, products)
	stats := handler.NewAnalyticsHandler(analytics)

	tokenAuth := middleware.TokenAuth(cfg.JWTSecret)
	adminOnly := middleware.RequireRole(model.RoleAdmin)
	staffOnly := middleware.RequireRole(model.RoleAdmin, model.RoleModerator)

	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")

	// Auth routes are rate limited to slow credential stuffing.
	a := api.Group("/auth", limiter)
	a.POST("/register", auth.Register)
	a.POST("/login", auth.Login)

	// Public catalog browsing, served through the response cache.
	pub := api.Group("", cache)
	pub.GET("/products", product.List)
	pub.GET("/products/:id", product.Get)
	pub.GET("/products/referral/:code", product.GetByReferral)
	pub.GET("/dealers", dealer.List)
	pub.GET("/dealers/:id", dealer.Get)
	pub.GET("/companies", company.List)
	pub.GET("/companies/:id", company.Get)
	pub.GET("/categories", category.List)
	pub.GET("/categories/:id", category.Get)

	// Public lead forms.
	api.POST("/inquiries", lead.CreateInquiry)
	api.POST("/messages", lead.CreateMessage)
	api.POST("/sells", lead.CreateSell)

	// Everything below requires a valid access token.
	priv := api.Group("", tokenAuth)

	priv.GET("/users/me", user.Me)
	priv.PATCH("/users/me", user.UpdateMe)

	c := priv.Group("/cart")
	c.GET("", cart.Get)
	c.POST("/items", cart.AddItem)
	c.PATCH("/items/:id", cart.SetQuantity)
	c.DELETE("/items/:id", cart.RemoveItem)
	c.DELETE("", cart.Clear)
	c.POST("/discount", cart.ApplyDiscount)

	r := priv.Group("/reservations")
	r.POST("", reservation.Create)
	r.GET("", reservation.List)
	r.GET("/:id", reservation.Get)
	r.PATCH("/:id/status", reservation.UpdateStatus, staffOnly)
	r.DELETE("/:id", reservation.Delete, adminOnly)

	t := priv.Group("/trade-ins")
	t.POST("", tradeIn.Create)
	t.GET("", tradeIn.List)
	t.GET("/:id", tradeIn.Get)
	t.PATCH("/:id/review", tradeIn.Review, staffOnly)
	t.DELETE("/:id", tradeIn.Delete, adminOnly)

	// Product writes: moderators manage their own listings, admins manage all.
	pw := priv.Group("/products", staffOnly)
	pw.POST("", product.Create)
	pw.PATCH("/:id", product.Update)
	pw.DELETE("/:id", product.Delete)

	// Admin-only management surface.
	adm := priv.Group("", adminOnly)

	adm.GET("/users", user.List)
	adm.GET("/users/:id", user.Get)
	adm.PATCH("/users/:id", user.Update)
	adm.DELETE("/users/:id", user.Delete)

	adm.POST("/dealers", dealer.Create)
	adm.PATCH("/dealers/:id", dealer.Update)
	adm.DELETE("/dealers/:id", dealer.Delete)

	adm.POST("/companies", company.Create)
	adm.PATCH("/companies/:id", company.Update)
	adm.DELETE("/companies/:id", company.Delete)

	adm.POST("/categories", category.Create)
	adm.PATCH("/categories/:id", category.Update)
	adm.DELETE("/categories/:id", category.Delete)

	adm.GET("/inquiries", lead.ListInquiries)
	adm.GET("/inquiries/:id", lead.GetInquiry)
	adm.DELETE("/inquiries/:id", lead.DeleteInquiry)
	adm.GET("/messages", lead.ListMessages)
	adm.DELETE("/messages/:id", lead.DeleteMessage)
	adm.GET("/sells", lead.ListSells)
	adm.DELETE("/sells/:id", lead.DeleteSell)

	// Auth and role middleware run before the cache, so cached aggregates
	// are only ever served to admins.
	s := adm.Group("/analytics", cache)
	s.GET("/overview", stats.Overview)
	s.GET("/products-per-category", stats.ProductsPerCategory)
	s.GET("/top-products", stats.TopProducts)
	s.GET("/reservations-by-status", stats.ReservationsByStatus)
	s.GET("/trade-ins-by-status", stats.TradeInsByStatus)
}
