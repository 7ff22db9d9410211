package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-wms-backend/internal/handler"
	"go-wms-backend/internal/middleware"
	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/internal/service"
	"go-wms-backend/internal/ws"
	"go-wms-backend/pkg/database"

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
	// Auto Migrate (use a dedicated migration tool in production)
	db.AutoMigrate(
		&model.Department{},
		&model.Employee{},
		&model.Product{},
		&model.Supplier{},
		&model.Customer{},
		&model.Warehouse{},
		&model.Inventory{},
		&model.Transaction{},
		&model.User{},
	)

	// 3. Seed sample data and the default admin user
	seedInitialData(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	employeeRepo := repository.NewEmployeeRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	warehouseRepo := repository.NewWarehouseRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	userRepo := repository.NewUserRepo(db)

	invService := service.NewInventoryService(productRepo, employeeRepo, txRepo, db, wsHub)
	reportService := service.NewReportService(productRepo, txRepo)
	authService := service.NewAuthService(userRepo)

	invHandler := handler.NewInventoryHandler(invService)
	employeeHandler := handler.NewEmployeeHandler(employeeRepo, departmentRepo)
	partnerHandler := handler.NewPartnerHandler(supplierRepo, customerRepo, txRepo)
	warehouseHandler := handler.NewWarehouseHandler(warehouseRepo, inventoryRepo)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Management v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Get("/products", invHandler.GetProducts)
	protected.Post("/products", invHandler.CreateProduct)
	protected.Put("/products/:id", invHandler.UpdateProduct)
	protected.Delete("/products/:id", invHandler.DeleteProduct)

	// Transaction Routes
	protected.Get("/transactions", invHandler.GetTransactions)
	protected.Get("/transactions/:id", invHandler.GetTransaction)
	protected.Post("/transactions", invHandler.CreateTransaction)
	protected.Delete("/transactions/:id", invHandler.DeleteTransaction)

	// Employee & Department Routes
	protected.Get("/employees", employeeHandler.GetEmployees)
	protected.Post("/employees", employeeHandler.CreateEmployee)
	protected.Put("/employees/:id", employeeHandler.UpdateEmployee)
	protected.Delete("/employees/:id", employeeHandler.DeleteEmployee)
	protected.Get("/departments", employeeHandler.GetDepartments)
	protected.Post("/departments", employeeHandler.CreateDepartment)
	protected.Put("/departments/:id", employeeHandler.UpdateDepartment)
	protected.Delete("/departments/:id", employeeHandler.DeleteDepartment)

	// Supplier & Customer Routes
	protected.Get("/suppliers", partnerHandler.GetSuppliers)
	protected.Post("/suppliers", partnerHandler.CreateSupplier)
	protected.Put("/suppliers/:id", partnerHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", partnerHandler.DeleteSupplier)
	protected.Get("/customers", partnerHandler.GetCustomers)
	protected.Post("/customers", partnerHandler.CreateCustomer)
	protected.Put("/customers/:id", partnerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", partnerHandler.DeleteCustomer)
	protected.Get("/customers/:id/orders", partnerHandler.GetCustomerOrders)

	// Warehouse & Inventory Routes
	protected.Get("/warehouses", warehouseHandler.GetWarehouses)
	protected.Post("/warehouses", warehouseHandler.CreateWarehouse)
	protected.Put("/warehouses/:id", warehouseHandler.UpdateWarehouse)
	protected.Delete("/warehouses/:id", warehouseHandler.DeleteWarehouse)
	protected.Get("/inventory", warehouseHandler.GetInventory)
	protected.Post("/inventory", warehouseHandler.CreateInventory)
	protected.Put("/inventory/:productID/:warehouseID", warehouseHandler.UpdateInventory)
	protected.Delete("/inventory/:productID/:warehouseID", warehouseHandler.DeleteInventory)

	// Report & Dashboard Routes
	protected.Get("/reports/inventory", reportHandler.GetInventoryReport)
	protected.Get("/reports/revenue", reportHandler.GetRevenueReport)
	protected.Get("/dashboard/stats", reportHandler.GetDashboardStats)

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

	// 8. Graceful Shutdown
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
