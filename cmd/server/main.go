package main

import (
	"log"
	"time"

	"supply_manager/internal/config"
	"supply_manager/internal/database"
	"supply_manager/internal/handlers"
	"supply_manager/internal/redis"
	"supply_manager/internal/repository"
	"supply_manager/internal/services"
	"supply_manager/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func main() {
	// Quantities and prices render as plain JSON numbers, matching the
	// wire format the dashboards consume.
	decimal.MarshalJSONWithoutQuotes = true

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Initialize Redis
	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Initialize stores (load persisted snapshots)
	orderStore := store.NewOrderStore(snapshotRepo)
	priceStore := store.NewPriceStore(snapshotRepo)

	// Initialize services
	sessionTTL := time.Duration(cfg.SessionTimeout) * time.Second
	authService := services.NewAuthService(userRepo, redisClient, sessionTTL)
	orderService := services.NewOrderService(orderStore, priceStore)
	priceService := services.NewPriceService(priceStore)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	apiHandler := handlers.NewAPIHandler(authService, orderService, priceService)

	// Setup routes
	router := gin.Default()

	router.POST("/login", authHandler.HotelLogin)
	router.POST("/dealer/login", authHandler.DealerLogin)
	router.POST("/logout", authHandler.Logout)

	router.POST("/orders/", apiHandler.CreateOrders)
	router.DELETE("/orders/:id", apiHandler.DeleteOrder)
	router.GET("/hotel/dashboard", apiHandler.HotelDashboard)

	router.GET("/prices", apiHandler.ListPrices)

	dealer := router.Group("/dealer")
	{
		dealer.GET("/dashboard", apiHandler.DealerDashboard)
		dealer.PUT("/orders/status", apiHandler.UpdateItemStatus)
		dealer.POST("/prices", apiHandler.SetPrice)
		dealer.DELETE("/prices/:item", apiHandler.DeletePrice)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
