package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmehedi135712-tech/account-books/internal/application/ledger"
	"github.com/mdmehedi135712-tech/account-books/internal/application/prefs"
	"github.com/mdmehedi135712-tech/account-books/internal/application/reminder"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/pdf"
	apphttp "github.com/mdmehedi135712-tech/account-books/internal/interfaces/http"
	"github.com/mdmehedi135712-tech/account-books/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// memStore doble en memoria del LedgerStore.
type memStore struct {
	customers    []*entity.Customer
	transactions []*entity.Transaction
	prefs        map[string]string
}

func (s *memStore) ReadCustomers() ([]*entity.Customer, error) { return s.customers, nil }
func (s *memStore) WriteCustomers(c []*entity.Customer) error  { s.customers = c; return nil }
func (s *memStore) ReadTransactions() ([]*entity.Transaction, error) {
	return s.transactions, nil
}
func (s *memStore) WriteTransactions(tx []*entity.Transaction) error {
	s.transactions = tx
	return nil
}
func (s *memStore) ReadPreference(key string) (string, bool, error) {
	v, ok := s.prefs[key]
	return v, ok, nil
}
func (s *memStore) WritePreference(key, value string) error {
	s.prefs[key] = value
	return nil
}

// unconfiguredGenerator simula la ausencia de API key: el redactor debe usar
// la plantilla local sin llamar nunca al puerto.
type unconfiguredGenerator struct{}

func (unconfiguredGenerator) Generate(context.Context, string) (string, error) {
	panic("no debe llamarse sin credencial")
}
func (unconfiguredGenerator) Configured() bool { return false }

// buildTestApp arma la aplicación Fiber completa con un store en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})

	store := &memStore{prefs: map[string]string{}}
	ledgerUC := ledger.NewLedgerUseCase(store, log)
	require.NoError(t, ledgerUC.Load())

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		LedgerUC:   ledgerUC,
		ReminderUC: reminder.NewReminderUseCase(unconfiguredGenerator{}, log),
		PrefsUC:    prefs.NewPreferenceUseCase(store),
		SummaryPDF: pdf.NewSummaryPDFGenerator(),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// createCustomer helper que crea un cliente vía API y devuelve su ID.
func createCustomer(t *testing.T, app *fiber.App, name string, initialDue float64) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name": name, "initial_due": initialDue,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	return body["id"].(string)
}

// ──────────────────────────────────────────────────────────────────────────────
// Customers
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCustomer_ConDeudaInicial_Retorna201ConSaldo(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{
		"name": "Alice", "phone": "555-0101", "initial_due": 100,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	decode(t, resp, &body)
	assert.Equal(t, "Alice", body["name"])
	assert.NotEmpty(t, body["id"])
	assert.EqualValues(t, 100, body["due"], "la respuesta debe traer el saldo calculado")
}

func TestCreateCustomer_NombreVacio_Retorna400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/customers", fiber.Map{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestGetCustomer_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/customers/no-existe", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListCustomers_FiltraPorNombre(t *testing.T) {
	app := buildTestApp(t)
	createCustomer(t, app, "Alice", 0)
	createCustomer(t, app, "Bob", 0)

	resp := doJSON(t, app, http.MethodGet, "/api/customers?search=ali", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body []map[string]interface{}
	decode(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Alice", body[0]["name"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Transactions y Summary
// ──────────────────────────────────────────────────────────────────────────────

func TestAddTransaction_PagoActualizaElSaldo(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app, "Alice", 100)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+id+"/transactions", fiber.Map{
		"type": "payment", "amount": 40, "date": "2024-03-15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/customers/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	decode(t, resp, &body)
	assert.EqualValues(t, 60, body["due"])
}

func TestAddTransaction_MontoInvalido_Retorna400(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app, "Alice", 0)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+id+"/transactions", fiber.Map{
		"type": "credit", "amount": 0,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSummary_SoloClientesConDeudaOrdenDescendente(t *testing.T) {
	app := buildTestApp(t)
	createCustomer(t, app, "SinDeuda", 0)
	createCustomer(t, app, "Menor", 30)
	createCustomer(t, app, "Mayor", 200)

	resp := doJSON(t, app, http.MethodGet, "/api/summary", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		TotalDue       float64 `json:"total_due"`
		TotalCustomers int     `json:"total_customers"`
		Entries        []struct {
			Name string  `json:"name"`
			Due  float64 `json:"due"`
		} `json:"entries"`
	}
	decode(t, resp, &body)

	assert.EqualValues(t, 230, body.TotalDue)
	assert.Equal(t, 3, body.TotalCustomers)
	require.Len(t, body.Entries, 2, "los clientes sin deuda no aparecen en el reporte")
	assert.Equal(t, "Mayor", body.Entries[0].Name)
	assert.Equal(t, "Menor", body.Entries[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reminder y Preferences
// ──────────────────────────────────────────────────────────────────────────────

func TestDraftReminder_SinCredencial_DevuelvePlantillaLocal(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app, "Bob", 50)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+id+"/reminder", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["message"], "Bob")
	assert.Contains(t, body["message"], "(API Key not configured)")
}

func TestDraftReminder_SinDeuda_NoLlamaAlGenerador(t *testing.T) {
	app := buildTestApp(t)
	id := createCustomer(t, app, "Bob", 0)

	resp := doJSON(t, app, http.MethodPost, "/api/customers/"+id+"/reminder", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "This customer has no outstanding balance.", body["message"])
}

func TestPreferences_DefaultYActualizacion(t *testing.T) {
	app := buildTestApp(t)

	// Default cuando no hay nada guardado
	resp := doJSON(t, app, http.MethodGet, "/api/preferences/currency", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "BDT", body["value"])

	// Actualización válida
	resp = doJSON(t, app, http.MethodPut, "/api/preferences/currency", fiber.Map{"value": "usd"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)

	resp = doJSON(t, app, http.MethodGet, "/api/preferences/currency", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "USD", body["value"], "el código se normaliza a mayúsculas")

	// Clave desconocida
	resp = doJSON(t, app, http.MethodGet, "/api/preferences/font", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
