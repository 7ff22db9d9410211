package handler

import (
	"go-wms-backend/internal/model"
	"go-wms-backend/internal/repository"
	"go-wms-backend/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	employeeRepo   repository.EmployeeRepository
	departmentRepo repository.DepartmentRepository
}

func NewEmployeeHandler(eRepo repository.EmployeeRepository, dRepo repository.DepartmentRepository) *EmployeeHandler {
	return &EmployeeHandler{employeeRepo: eRepo, departmentRepo: dRepo}
}

func (h *EmployeeHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.employeeRepo.FindAll(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(employees)
}

func (h *EmployeeHandler) CreateEmployee(c *fiber.Ctx) error {
	var employee model.Employee
	if err := c.BodyParser(&employee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&employee); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	// The revenue counter starts at zero and only transactions move it.
	employee.RevenueContribution = 0
	employee.CreatedBy = getUserID(c)
	employee.UpdatedBy = getUserID(c)

	if err := h.employeeRepo.Create(&employee); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Employee created", "data": employee})
}

func (h *EmployeeHandler) UpdateEmployee(c *fiber.Ctx) error {
	existing, err := h.employeeRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}

	var req model.Employee
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	// RevenueContribution is derived state; updates may not touch it.
	existing.Name = req.Name
	existing.Gender = req.Gender
	existing.Phone = req.Phone
	existing.Address = req.Address
	existing.Position = req.Position
	existing.DepartmentID = req.DepartmentID
	existing.UpdatedBy = getUserID(c)

	if errs := validator.ValidateStruct(existing); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	if err := h.employeeRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Employee updated", "data": existing})
}

func (h *EmployeeHandler) DeleteEmployee(c *fiber.Ctx) error {
	if _, err := h.employeeRepo.FindByID(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Employee not found"})
	}
	if err := h.employeeRepo.Delete(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EmployeeHandler) GetDepartments(c *fiber.Ctx) error {
	departments, err := h.departmentRepo.FindAll(c.Query("search"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(departments)
}

func (h *EmployeeHandler) CreateDepartment(c *fiber.Ctx) error {
	var department model.Department
	if err := c.BodyParser(&department); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&department); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Field '" + errs[0].FailedField + "' failed on tag '" + errs[0].Tag + "'"})
	}

	department.CreatedBy = getUserID(c)
	department.UpdatedBy = getUserID(c)

	if err := h.departmentRepo.Create(&department); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Department created", "data": department})
}

func (h *EmployeeHandler) UpdateDepartment(c *fiber.Ctx) error {
	existing, err := h.departmentRepo.FindByID(c.Params("id"))
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
	}

	var req model.Department
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	existing.Name = req.Name
	existing.Phone = req.Phone
	existing.UpdatedBy = getUserID(c)

	if err := h.departmentRepo.Update(existing); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "Department updated", "data": existing})
}

func (h *EmployeeHandler) DeleteDepartment(c *fiber.Ctx) error {
	if _, err := h.departmentRepo.FindByID(c.Params("id")); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Department not found"})
	}
	if err := h.departmentRepo.Delete(c.Params("id")); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
