package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/domain"
)

// PreferenceHandler maneja las preferencias de display (currency, theme).
type PreferenceHandler struct {
	uc *prefs.PreferenceUseCase
}

// NewPreferenceHandler construye el handler.
func NewPreferenceHandler(uc *prefs.PreferenceUseCase) *PreferenceHandler {
	return &PreferenceHandler{uc: uc}
}

// Get GET /api/preferences/:key
func (h *PreferenceHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	value, err := h.uc.Get(key)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_KEY", Message: "las claves válidas son currency y theme"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PreferenceResponse{Key: key, Value: value})
}

// Update PUT /api/preferences/:key
func (h *PreferenceHandler) Update(c *fiber.Ctx) error {
	key := c.Params("key")
	var in dto.UpdatePreferenceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Set(key, in.Value); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "clave o valor de preferencia inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.PreferenceResponse{Key: key, Value: in.Value})
}
