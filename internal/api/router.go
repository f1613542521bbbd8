package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pharmacy-system/internal/api/handlers"
	"pharmacy-system/internal/api/middleware"
	"pharmacy-system/internal/auth"
)

// excludedPaths are reachable without a session cookie.
var excludedPaths = []string{
	"/api/v1/register/",
	"/api/v1/auth_session/login/",
}

// Handlers bundles the per-entity handlers the router mounts.
type Handlers struct {
	Employees          *handlers.EmployeeHandler
	SessionAuth        *handlers.SessionAuthHandler
	Brands             *handlers.BrandHandler
	Categories         *handlers.CategoryHandler
	Products           *handlers.ProductHandler
	ProductBrands      *handlers.ProductBrandHandler
	PurchaseOrders     *handlers.PurchaseOrderHandler
	PurchaseOrderItems *handlers.PurchaseOrderItemHandler
	Sales              *handlers.SaleHandler
	StockLevels        *handlers.StockLevelHandler
}

// NewRouter builds the gin engine with the full middleware chain and route
// table. rateLimit is a limiter format string like "100-M"; empty disables
// rate limiting.
//
// List routes reuse the ":id" segment as the page size because gin requires
// parameters at the same position to share a name.
func NewRouter(svc *auth.Service, h Handlers, rateLimit string) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Logger(), gin.Recovery())
	engine.Use(middleware.CORS())
	if rateLimit != "" {
		engine.Use(middleware.RateLimit(rateLimit))
	}
	engine.Use(middleware.SessionAuth(svc, excludedPaths))

	engine.HandleMethodNotAllowed = true
	engine.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method Not Allowed"})
	})
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	})

	v1 := engine.Group("/api/v1")
	admin := middleware.AdminOnly()

	v1.POST("/register", h.Employees.Register)
	v1.POST("/auth_session/login", h.SessionAuth.Login)
	v1.DELETE("/auth_session/logout", h.SessionAuth.Logout)

	v1.GET("/employees/:id/:page_num", admin, h.Employees.List)
	v1.GET("/employees/:id", h.Employees.Get)
	v1.PUT("/employees/:id", h.Employees.Update)
	v1.DELETE("/employees/:id", admin, h.Employees.Delete)

	v1.POST("/brands", admin, h.Brands.Create)
	v1.GET("/brands/:id/:page_num", admin, h.Brands.List)
	v1.GET("/brands/:id", admin, h.Brands.Get)
	v1.PUT("/brands/:id", admin, h.Brands.Update)
	v1.DELETE("/brands/:id", admin, h.Brands.Delete)
	v1.GET("/brands/:id/products", admin, h.ProductBrands.BrandProducts)

	v1.POST("/categories", admin, h.Categories.Create)
	v1.GET("/categories/:id/:page_num", admin, h.Categories.List)
	v1.GET("/categories/:id", admin, h.Categories.Get)
	v1.PUT("/categories/:id", admin, h.Categories.Update)
	v1.DELETE("/categories/:id", admin, h.Categories.Delete)

	v1.POST("/products", admin, h.Products.Create)
	v1.GET("/products/:id/:page_num", admin, h.Products.List)
	v1.GET("/products/:id", admin, h.Products.Get)
	v1.PUT("/products/:id", admin, h.Products.Update)
	v1.DELETE("/products/:id", admin, h.Products.Delete)
	v1.GET("/products/:id/brands", admin, h.ProductBrands.ProductBrands)
	v1.POST("/products/:id/brands/:brand_id", admin, h.ProductBrands.Link)
	v1.DELETE("/products/:id/brands/:brand_id", admin, h.ProductBrands.Unlink)

	v1.POST("/purchase_orders", admin, h.PurchaseOrders.Create)
	v1.GET("/purchase_orders/:id/:page_num", admin, h.PurchaseOrders.List)
	v1.GET("/purchase_orders/:id", admin, h.PurchaseOrders.Get)
	v1.PUT("/purchase_orders/:id", admin, h.PurchaseOrders.Update)
	v1.DELETE("/purchase_orders/:id", admin, h.PurchaseOrders.Delete)

	v1.POST("/purchase_orders/:id/purchase_order_items", admin, h.PurchaseOrderItems.Create)
	v1.GET("/purchase_orders/:id/purchase_order_items/:item_id", admin, h.PurchaseOrderItems.Get)
	v1.PUT("/purchase_orders/:id/purchase_order_items/:item_id", admin, h.PurchaseOrderItems.Update)
	v1.DELETE("/purchase_orders/:id/purchase_order_items/:item_id", admin, h.PurchaseOrderItems.Delete)
	v1.GET("/purchases/:id/:page_num", admin, h.PurchaseOrderItems.List)

	v1.POST("/sales", admin, h.Sales.Create)
	v1.GET("/sales/:id/:page_num", admin, h.Sales.List)
	v1.GET("/sales/:id", admin, h.Sales.Get)
	v1.PUT("/sales/:id", admin, h.Sales.Update)
	v1.DELETE("/sales/:id", admin, h.Sales.Delete)

	v1.POST("/stock_levels", admin, h.StockLevels.Create)
	v1.GET("/stock_levels/:id/:page_num", admin, h.StockLevels.List)
	v1.GET("/stock_levels/:id", admin, h.StockLevels.Get)
	v1.PUT("/stock_levels/:id", admin, h.StockLevels.Update)
	v1.DELETE("/stock_levels/:id", admin, h.StockLevels.Delete)

	return engine
}
