package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/domain"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerHandler maneja las peticiones HTTP de clientes.
type CustomerHandler struct {
	uc *ledger.LedgerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *ledger.LedgerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create POST /api/customers
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.AddCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.AddCustomer(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido y initial_due no puede ser negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	due, _ := h.uc.GetDue(customer.ID)
	return c.Status(fiber.StatusCreated).JSON(toCustomerResponse(customer, due))
}

// List GET /api/customers?search=ali
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers := h.uc.ListCustomers(c.Query("search"))
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		due, _ := h.uc.GetDue(customer.ID)
		out = append(out, toCustomerResponse(customer, due))
	}
	return c.JSON(out)
}

// GetByID GET /api/customers/:id
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.GetCustomer(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	due, _ := h.uc.GetDue(customer.ID)
	return c.JSON(toCustomerResponse(customer, due))
}

// Update PUT /api/customers/:id
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	customer, err := h.uc.UpdateCustomer(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	due, _ := h.uc.GetDue(customer.ID)
	return c.JSON(toCustomerResponse(customer, due))
}

func toCustomerResponse(c *entity.Customer, due decimal.Decimal) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Website: c.Website,
		Due:     due,
	}
}
