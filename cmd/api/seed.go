package main

import (
	"log"
	"time"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"

	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// seedInitialData populates an empty database with sample master data
// and a default admin account. The departments table doubles as the
// "already seeded" marker.
func seedInitialData(db *gorm.DB) {
	seedAdminUser(db)

	var count int64
	db.Model(&model.Department{}).Count(&count)
	if count > 0 {
		return
	}

	sales := model.Department{Name: "Sales", Phone: "0901000001"}
	logistics := model.Department{Name: "Logistics", Phone: "0901000002"}
	if err := db.Create(&sales).Error; err != nil {
		log.Printf("Warning: failed to seed departments: %v", err)
		return
	}
	db.Create(&logistics)

	employees := []model.Employee{
		{Name: "Tran Van An", Gender: "male", Phone: "0912000001", Position: "Sales Staff", DepartmentID: &sales.ID},
		{Name: "Le Thi Binh", Gender: "female", Phone: "0912000002", Position: "Warehouse Keeper", DepartmentID: &logistics.ID},
	}
	for i := range employees {
		db.Create(&employees[i])
	}

	suppliers := []model.Supplier{
		{Name: "Minh Phat Trading", ContactPerson: "Nguyen Minh", Phone: "0281000001", Email: "contact@minhphat.vn", Address: "Ho Chi Minh City"},
		{Name: "Dong A Import", ContactPerson: "Pham Dong", Phone: "0281000002", Email: "sales@donga.vn", Address: "Hanoi"},
	}
	for i := range suppliers {
		db.Create(&suppliers[i])
	}

	customers := []model.Customer{
		{Name: "Bach Hoa Xanh", Phone: "0283000001", Address: "District 1, Ho Chi Minh City"},
		{Name: "Coopmart Retail", Phone: "0283000002", Address: "District 3, Ho Chi Minh City"},
	}
	for i := range customers {
		db.Create(&customers[i])
	}

	warehouses := []model.Warehouse{
		{Name: "Central Warehouse", Location: "Binh Duong", Capacity: 10000},
		{Name: "North Depot", Location: "Bac Ninh", Capacity: 5000},
	}
	for i := range warehouses {
		db.Create(&warehouses[i])
	}

	// Stocks below already reflect the seeded transactions.
	products := []model.Product{
		{Name: "Jasmine Rice 5kg", Category: "Food", Origin: "Vietnam", Price: 150000, ImportCost: 110000, Stock: 80},
		{Name: "Fish Sauce 500ml", Category: "Condiments", Origin: "Vietnam", Price: 45000, ImportCost: 30000, Stock: 200},
		{Name: "Instant Noodles Box", Category: "Food", Origin: "Vietnam", Price: 95000, ImportCost: 70000, Stock: 150},
	}
	for i := range products {
		db.Create(&products[i])
	}

	inventory := []model.Inventory{
		{ProductID: products[0].ID, WarehouseID: warehouses[0].ID, Stock: 60},
		{ProductID: products[0].ID, WarehouseID: warehouses[1].ID, Stock: 20},
		{ProductID: products[1].ID, WarehouseID: warehouses[0].ID, Stock: 200},
		{ProductID: products[2].ID, WarehouseID: warehouses[0].ID, Stock: 150},
	}
	for i := range inventory {
		db.Create(&inventory[i])
	}

	transactions := []model.Transaction{
		{
			Kind:       model.KindImport,
			ProductID:  products[0].ID,
			EmployeeID: employees[1].ID,
			SupplierID: strPtr(suppliers[0].ID),
			Quantity:   100,
			UnitPrice:  110000,
			Date:       time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Kind:       model.KindExport,
			ProductID:  products[0].ID,
			EmployeeID: employees[0].ID,
			CustomerID: strPtr(customers[0].ID),
			Quantity:   20,
			UnitPrice:  150000,
			Date:       time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Kind:       model.KindImport,
			ProductID:  products[1].ID,
			EmployeeID: employees[1].ID,
			SupplierID: strPtr(suppliers[1].ID),
			Quantity:   200,
			UnitPrice:  30000,
			Date:       time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		},
	}
	for i := range transactions {
		db.Create(&transactions[i])
	}

	// Credit the export above to the selling employee.
	db.Model(&model.Employee{}).
		Where("id = ?", employees[0].ID).
		Update("revenue_contribution", float64(20)*150000)

	log.Println("Sample data seeded")
}

func seedAdminUser(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:    "admin@example.com",
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: failed to create admin user: %v", err)
		return
	}
	log.Println("Admin user created: admin@example.com / admin123")
}
