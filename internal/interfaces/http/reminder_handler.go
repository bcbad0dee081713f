package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
	"github.com/mdmehedi135712-tech/account-books/internal/domain"
	"github.com/mdmehedi135712-tech/account-books/pkg/currency"
)

// ReminderHandler redacta el recordatorio de pago de un cliente.
type ReminderHandler struct {
	ledgerUC   *ledger.LedgerUseCase
	reminderUC *reminder.ReminderUseCase
	prefsUC    *prefs.PreferenceUseCase
}

// NewReminderHandler construye el handler.
func NewReminderHandler(ledgerUC *ledger.LedgerUseCase, reminderUC *reminder.ReminderUseCase, prefsUC *prefs.PreferenceUseCase) *ReminderHandler {
	return &ReminderHandler{ledgerUC: ledgerUC, reminderUC: reminderUC, prefsUC: prefsUC}
}

// Draft POST /api/customers/:id/reminder
// La redacción en sí nunca falla: cualquier problema con el servicio remoto se
// convierte en un texto de fallback, así que los únicos errores posibles aquí
// son cliente inexistente o un fallo del store de preferencias.
func (h *ReminderHandler) Draft(c *fiber.Ctx) error {
	customer, err := h.ledgerUC.GetCustomer(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	due, err := h.ledgerUC.GetDue(customer.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	code, err := h.prefsUC.Currency()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	message := h.reminderUC.Draft(c.Context(), customer.Name, due, currency.FormatterFor(code))
	return c.JSON(dto.ReminderResponse{Message: message})
}
