package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-fruit-inventory/internal/handler"
	"go-fruit-inventory/internal/model"
	"go-fruit-inventory/internal/repository"
	"go-fruit-inventory/internal/service"
	"go-fruit-inventory/internal/ws"
	"go-fruit-inventory/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Fruit{}, &model.Inventory{}, &model.StockTransaction{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	fruitRepo := repository.NewFruitRepo(db)
	txRepo := repository.NewTransactionRepo(db)

	invService := service.NewInventoryService(fruitRepo, wsHub)
	dashService := service.NewDashboardService(txRepo)

	fruitHandler := handler.NewFruitHandler(invService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Fruit Inventory API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api")

	api.Get("/fruits", fruitHandler.GetFruits)
	api.Post("/fruits", fruitHandler.CreateFruit)
	api.Put("/fruits/:id", fruitHandler.UpdateFruit)

	api.Get("/transactions", dashHandler.GetTransactions)
	api.Get("/dashboard/stats", dashHandler.GetInventoryStats)
	api.Get("/dashboard/stock-movement", dashHandler.GetStockMovement)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
