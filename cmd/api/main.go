package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"pharmacy-system/config"
	"pharmacy-system/internal/api"
	"pharmacy-system/internal/api/handlers"
	"pharmacy-system/internal/auth"
	"pharmacy-system/internal/database"
	"pharmacy-system/internal/storage"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.Auth.CookieName == "" {
		log.Fatal("SESSION_NAME must be set")
	}

	if cfg.Server.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewConnection(cfg.DSN())
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	cache := config.NewRedisClient(cfg.Redis)

	employees := storage.NewEmployeeRepository(db)
	sessions := storage.NewSessionRepository(db)
	brands := storage.NewBrandRepository(db)
	categories := storage.NewCategoryRepository(db)
	products := storage.NewProductRepository(db)
	orders := storage.NewPurchaseOrderRepository(db)
	orderItems := storage.NewPurchaseOrderItemRepository(db)
	sales := storage.NewSaleRepository(db)
	stockLevels := storage.NewStockLevelRepository(db)

	svc := auth.NewService(employees, sessions, cfg.Auth.CookieName,
		time.Duration(cfg.Auth.SessionDuration)*time.Second)

	router := api.NewRouter(svc, api.Handlers{
		Employees:          handlers.NewEmployeeHandler(employees),
		SessionAuth:        handlers.NewSessionAuthHandler(svc, cfg.Auth.CookieSecure),
		Brands:             handlers.NewBrandHandler(brands),
		Categories:         handlers.NewCategoryHandler(categories),
		Products:           handlers.NewProductHandler(products, categories, cache),
		ProductBrands:      handlers.NewProductBrandHandler(products, brands),
		PurchaseOrders:     handlers.NewPurchaseOrderHandler(orders, brands),
		PurchaseOrderItems: handlers.NewPurchaseOrderItemHandler(orderItems, orders, products),
		Sales:              handlers.NewSaleHandler(sales, products, brands),
		StockLevels:        handlers.NewStockLevelHandler(stockLevels, products, brands),
	}, cfg.RateLimit)

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("pharmacy API listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
