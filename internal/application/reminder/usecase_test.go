package reminder_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
	"github.com/mdmehedi135712-tech/account-books/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubGenerator doble del puerto TextGenerator con comportamiento programable.
type stubGenerator struct {
	configured bool
	text       string
	err        error
	calls      int
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

func (s *stubGenerator) Configured() bool { return s.configured }

func testFormat(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

func newUseCase(gen *stubGenerator) *reminder.ReminderUseCase {
	return reminder.NewReminderUseCase(gen, logger.New(logger.Config{Env: "test", Level: "error"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Las cuatro salidas terminales de Draft
// ──────────────────────────────────────────────────────────────────────────────

// Salida 1: sin deuda → texto fijo, sin llamada remota.
func TestDraft_SinDeuda_NoLlamaAlGenerador(t *testing.T) {
	gen := &stubGenerator{configured: true, text: "no debería usarse"}
	uc := newUseCase(gen)

	msg := uc.Draft(context.Background(), "Bob", decimal.Zero, testFormat)

	assert.Equal(t, "This customer has no outstanding balance.", msg)
	assert.Zero(t, gen.calls, "con saldo cero no debe haber llamada remota")

	// También con saldo negativo (el cliente tiene crédito a favor).
	msg = uc.Draft(context.Background(), "Bob", decimal.NewFromInt(-10), testFormat)
	assert.Equal(t, "This customer has no outstanding balance.", msg)
	assert.Zero(t, gen.calls)
}

// Salida 2: generador configurado → texto del modelo tal cual.
func TestDraft_ConCredencial_DevuelveTextoGenerado(t *testing.T) {
	gen := &stubGenerator{configured: true, text: "Hola Bob, recuerda tu pago pendiente."}
	uc := newUseCase(gen)

	msg := uc.Draft(context.Background(), "Bob", decimal.NewFromInt(50), testFormat)

	assert.Equal(t, "Hola Bob, recuerda tu pago pendiente.", msg, "el texto generado se devuelve verbatim")
	assert.Equal(t, 1, gen.calls, "exactamente una llamada, sin retry")
}

// Salida 3: sin credencial → plantilla local determinista con nombre y monto.
func TestDraft_SinCredencial_DevuelvePlantillaLocal(t *testing.T) {
	gen := &stubGenerator{configured: false}
	uc := newUseCase(gen)

	msg := uc.Draft(context.Background(), "Bob", decimal.NewFromInt(50), testFormat)

	assert.Contains(t, msg, "Bob", "la plantilla debe incluir el nombre")
	assert.Contains(t, msg, "$50.00", "la plantilla debe incluir el monto formateado")
	assert.Contains(t, msg, "(API Key not configured)")
	assert.Zero(t, gen.calls, "sin credencial no debe intentarse la llamada")
}

// Salida 4: la llamada falla → texto de disculpa fijo; el error nunca se propaga.
func TestDraft_LlamadaFallida_DevuelveFallbackSinPropagar(t *testing.T) {
	gen := &stubGenerator{configured: true, err: errors.New("timeout de red")}
	uc := newUseCase(gen)

	msg := uc.Draft(context.Background(), "Bob", decimal.NewFromInt(50), testFormat)

	assert.Equal(t, "Error generating message. Please check your API key and network connection.", msg)
	assert.Equal(t, 1, gen.calls, "un solo intento; el fallo se reporta de inmediato")
}
