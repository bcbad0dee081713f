package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/domain"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// TransactionHandler maneja los movimientos (créditos y pagos) de un cliente.
type TransactionHandler struct {
	uc *ledger.LedgerUseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.LedgerUseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Create POST /api/customers/:id/transactions
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	var in dto.AddTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	tx, err := h.uc.AddTransaction(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser credit|payment, amount > 0 y date en formato YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toTransactionResponse(tx))
}

// List GET /api/customers/:id/transactions
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	transactions, err := h.uc.ListTransactions(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, toTransactionResponse(tx))
	}
	return c.JSON(out)
}

func toTransactionResponse(t *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          t.ID,
		CustomerID:  t.CustomerID,
		Type:        string(t.Type),
		Amount:      t.Amount,
		Date:        t.Date.Format(dateLayout),
		Description: t.Description,
	}
}
