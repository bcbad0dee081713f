// Package reminder implementa la redacción de recordatorios de pago.
//
// La operación tiene exactamente cuatro salidas terminales y nunca devuelve
// error al caller:
//  1. sin deuda        → texto informativo fijo, sin llamada remota
//  2. con credencial   → texto generado por el modelo, tal cual
//  3. sin credencial   → plantilla local determinista
//  4. llamada fallida  → texto de disculpa fijo (el fallo solo se loguea)
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdmehedi135712-tech/account-books/internal/application/ports"
	"github.com/mdmehedi135712-tech/account-books/pkg/logger"
)

const (
	// generateTimeout tope por llamada al modelo; las latencias externas no
	// deben bloquear al servidor. Un solo intento, sin retry.
	generateTimeout = 10 * time.Second

	noBalanceMessage = "This customer has no outstanding balance."

	fallbackTemplate = "Hi %s, this is a friendly reminder that you have an outstanding balance of %s. " +
		"Please let us know if you have any questions. Thank you! (API Key not configured)"

	generationFailedMessage = "Error generating message. Please check your API key and network connection."

	promptTemplate = "Generate a short, friendly, and professional payment reminder SMS message " +
		"for a customer named %s who owes %s. Keep it concise and polite."
)

// FormatAmount formatea un monto para mostrarlo (símbolo de moneda incluido).
type FormatAmount func(amount decimal.Decimal) string

// ReminderUseCase redacta el mensaje de recordatorio para un cliente.
type ReminderUseCase struct {
	gen ports.TextGenerator
	log *logger.Logger
}

// NewReminderUseCase construye el caso de uso inyectando el puerto TextGenerator.
func NewReminderUseCase(gen ports.TextGenerator, log *logger.Logger) *ReminderUseCase {
	return &ReminderUseCase{gen: gen, log: log}
}

// Draft produce el recordatorio para customerName con la deuda dueAmount.
// Nunca devuelve error: todo fallo remoto se absorbe localmente y se convierte
// en un texto legible para el usuario.
func (uc *ReminderUseCase) Draft(ctx context.Context, customerName string, dueAmount decimal.Decimal, format FormatAmount) string {
	if !dueAmount.IsPositive() {
		return noBalanceMessage
	}

	formatted := format(dueAmount)
	if uc.gen == nil || !uc.gen.Configured() {
		return fmt.Sprintf(fallbackTemplate, customerName, formatted)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	message, err := uc.gen.Generate(ctx, fmt.Sprintf(promptTemplate, customerName, formatted))
	if err != nil {
		uc.log.Error().Err(err).Str("customer", customerName).Msg("generar recordatorio")
		return generationFailedMessage
	}
	return message
}
