package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.LedgerUseCase
	ReminderUC *reminder.ReminderUseCase
	PrefsUC    *prefs.PreferenceUseCase
	SummaryPDF *pdf.SummaryPDFGenerator
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Customers
	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.LedgerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)

	// Transactions (append-only, anidadas bajo el cliente)
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	customers.Post("/:id/transactions", transactionHandler.Create)
	customers.Get("/:id/transactions", transactionHandler.List)

	// Reminder
	reminderHandler := NewReminderHandler(deps.LedgerUC, deps.ReminderUC, deps.PrefsUC)
	customers.Post("/:id/reminder", reminderHandler.Draft)

	// Summary & Reports
	summaryHandler := NewSummaryHandler(deps.LedgerUC, deps.PrefsUC, deps.SummaryPDF)
	api.Get("/summary", summaryHandler.Summary)
	api.Get("/summary/pdf", summaryHandler.SummaryPDF)

	// Preferences (currency, theme)
	preferences := api.Group("/preferences")
	preferenceHandler := NewPreferenceHandler(deps.PrefsUC)
	preferences.Get("/:key", preferenceHandler.Get)
	preferences.Put("/:key", preferenceHandler.Update)
}
