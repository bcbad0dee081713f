package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos viajan como números JSON, no como strings, tanto en la API
	// como en el snapshot durable.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType tipo de movimiento: crédito (aumenta la deuda) o pago (la reduce).
// Enumeración cerrada de dos variantes; no es extensible.
type TransactionType string

const (
	TransactionCredit  TransactionType = "credit"
	TransactionPayment TransactionType = "payment"
)

// IsValid verifica que el tipo sea una de las dos variantes permitidas.
func (t TransactionType) IsValid() bool {
	return t == TransactionCredit || t == TransactionPayment
}

// Transaction movimiento inmutable de un cliente. Una vez creada no se edita
// ni se elimina; la colección de transacciones es append-only.
// Date es una fecha de calendario (sin hora); solo se usa para ordenar listados.
type Transaction struct {
	ID          string
	CustomerID  string
	Type        TransactionType
	Amount      decimal.Decimal
	Date        time.Time
	Description string
}

// Signed devuelve el monto con signo según el tipo: positivo para crédito,
// negativo para pago. Es la base del cálculo del saldo pendiente.
func (t *Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionPayment {
		return t.Amount.Neg()
	}
	return t.Amount
}
