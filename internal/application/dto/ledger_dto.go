package dto

import "github.com/shopspring/decimal"

// AddCustomerRequest body para POST /api/customers.
// InitialDue es opcional: si es > 0 se crea además una transacción de crédito
// "Initial due" con fecha de hoy.
type AddCustomerRequest struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Address    string          `json:"address,omitempty"`
	Website    string          `json:"website,omitempty"`
	InitialDue decimal.Decimal `json:"initial_due"`
}

// UpdateCustomerRequest body para PUT /api/customers/:id.
// Reemplaza todos los campos mutables; la identidad y el historial no se tocan.
type UpdateCustomerRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

// AddTransactionRequest body para POST /api/customers/:id/transactions.
// Type: "credit" | "payment". Date en formato YYYY-MM-DD (hoy si va vacía).
type AddTransactionRequest struct {
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date,omitempty"`
	Description string          `json:"description,omitempty"`
}

// CustomerResponse cliente en respuestas, con su saldo pendiente calculado.
type CustomerResponse struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone,omitempty"`
	Address string          `json:"address,omitempty"`
	Website string          `json:"website,omitempty"`
	Due     decimal.Decimal `json:"due"`
}

// TransactionResponse movimiento en respuestas. Date en formato YYYY-MM-DD.
type TransactionResponse struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customer_id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// DueSummaryEntryResponse entrada del reporte "deuda por cliente".
type DueSummaryEntryResponse struct {
	CustomerID string          `json:"customer_id"`
	Name       string          `json:"name"`
	Due        decimal.Decimal `json:"due"`
}

// SummaryResponse reporte agregado para GET /api/summary.
type SummaryResponse struct {
	TotalDue       decimal.Decimal           `json:"total_due"`
	TotalCustomers int                       `json:"total_customers"`
	Entries        []DueSummaryEntryResponse `json:"entries"`
}

// ReminderResponse mensaje generado para POST /api/customers/:id/reminder.
type ReminderResponse struct {
	Message string `json:"message"`
}

// PreferenceResponse preferencia escalar (currency, theme).
type PreferenceResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpdatePreferenceRequest body para PUT /api/preferences/:key.
type UpdatePreferenceRequest struct {
	Value string `json:"value"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
