package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/internal/ws"
	"go-wms-backend/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrProductNotFound     = errors.New("product not found")
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInsufficientStock   = errors.New("not enough stock for this export transaction")
	ErrProductNameTaken    = errors.New("product name already exists")
	ErrPartnerMismatch     = errors.New("imports require a supplier, exports require a customer")
)

type InventoryService interface {
	CreateProduct(req *model.Product, userID string) error
	UpdateProduct(id string, req *model.Product, userID string) (*model.Product, error)
	DeleteProduct(id string) error
	GetProducts(search string) ([]model.Product, error)
	RecordTransaction(req *model.Transaction, userID, userName string) (*model.Transaction, error)
	DeleteTransaction(id string, userID, userName string) error
	GetTransactions(search string) ([]model.Transaction, error)
	GetTransactionByID(id string) (*model.Transaction, error)
}

type inventoryService struct {
	productRepo     repository.ProductRepository
	employeeRepo    repository.EmployeeRepository
	transactionRepo repository.TransactionRepository
	db              *gorm.DB
	wsHub           *ws.Hub
}

func NewInventoryService(
	pRepo repository.ProductRepository,
	eRepo repository.EmployeeRepository,
	tRepo repository.TransactionRepository,
	db *gorm.DB,
	hub *ws.Hub,
) InventoryService {
	return &inventoryService{
		productRepo:     pRepo,
		employeeRepo:    eRepo,
		transactionRepo: tRepo,
		db:              db,
		wsHub:           hub,
	}
}

func (s *inventoryService) CreateProduct(req *model.Product, userID string) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	// Product names are unique across the catalog
	existing, _ := s.productRepo.FindByName(req.Name)
	if existing != nil && existing.ID != "" {
		return ErrProductNameTaken
	}

	req.CreatedBy = userID
	req.UpdatedBy = userID

	return s.productRepo.Create(req)
}

func (s *inventoryService) UpdateProduct(id string, req *model.Product, userID string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	existing.Name = req.Name
	existing.Category = req.Category
	existing.Origin = req.Origin
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.ImportCost = req.ImportCost
	existing.ManufactureDate = req.ManufactureDate
	existing.ExpiryDate = req.ExpiryDate
	existing.UpdatedBy = userID

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *inventoryService) DeleteProduct(id string) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *inventoryService) GetProducts(search string) ([]model.Product, error) {
	return s.productRepo.FindAll(search)
}

// RecordTransaction applies the stock/revenue reconciliation rule: the
// transaction row, the product stock adjustment and (for exports) the
// employee revenue credit commit atomically or not at all.
func (s *inventoryService) RecordTransaction(req *model.Transaction, userID, userName string) (*model.Transaction, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}
	if err := checkPartner(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	if _, err := s.employeeRepo.FindByID(req.EmployeeID); err != nil {
		return nil, ErrEmployeeNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		switch req.Kind {
		case model.KindImport:
			if err := s.productRepo.IncreaseStock(tx, product.ID, req.Quantity); err != nil {
				return err
			}
		case model.KindExport:
			// Conditional decrement: the WHERE stock >= qty guard keeps
			// the counter non-negative under concurrent exports.
			ok, err := s.productRepo.DecreaseStock(tx, product.ID, req.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return ErrInsufficientStock
			}
			if err := s.employeeRepo.AddRevenue(tx, req.EmployeeID, req.TotalAmount()); err != nil {
				return err
			}
		}

		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.transactionRepo.Create(tx, req)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastStockUpdate("transaction_created", req, userName)
	return req, nil
}

// DeleteTransaction reverses the recorded effect. A product or employee
// deleted since the transaction was recorded is skipped, not an error,
// and the reversal of an import is not floor-checked.
func (s *inventoryService) DeleteTransaction(id string, userID, userName string) error {
	t, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return ErrTransactionNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.productRepo.FindByID(t.ProductID); err == nil {
			delta := t.Quantity
			if t.Kind == model.KindImport {
				delta = -delta
			}
			if err := s.productRepo.IncreaseStock(tx, t.ProductID, delta); err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if t.Kind == model.KindExport {
			if _, err := s.employeeRepo.FindByID(t.EmployeeID); err == nil {
				if err := s.employeeRepo.AddRevenue(tx, t.EmployeeID, -t.TotalAmount()); err != nil {
					return err
				}
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return s.transactionRepo.Delete(tx, t.ID)
	})
	if err != nil {
		return err
	}

	s.broadcastStockUpdate("transaction_deleted", t, userName)
	return nil
}

func (s *inventoryService) GetTransactions(search string) ([]model.Transaction, error) {
	return s.transactionRepo.FindAll(search)
}

func (s *inventoryService) GetTransactionByID(id string) (*model.Transaction, error) {
	t, err := s.transactionRepo.FindByID(id)
	if err != nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

// checkPartner enforces the kind/partner exclusivity the schema itself
// cannot express: supplier iff import, customer iff export.
func checkPartner(t *model.Transaction) error {
	switch t.Kind {
	case model.KindImport:
		if t.SupplierID == nil || *t.SupplierID == "" || t.CustomerID != nil {
			return ErrPartnerMismatch
		}
	case model.KindExport:
		if t.CustomerID == nil || *t.CustomerID == "" || t.SupplierID != nil {
			return ErrPartnerMismatch
		}
	}
	return nil
}

func (s *inventoryService) broadcastStockUpdate(action string, t *model.Transaction, userName string) {
	go func() {
		payload := map[string]interface{}{
			"type":   "stock_update",
			"action": action,
			"transaction": map[string]interface{}{
				"id":         t.ID,
				"kind":       t.Kind,
				"quantity":   t.Quantity,
				"product_id": t.ProductID,
			},
			"message": fmt.Sprintf("%s: %s %d units of product %s", userName, t.Kind, t.Quantity, t.ProductID),
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}
