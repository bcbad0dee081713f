package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/mdmehedi135712-tech/account-books/internal/infrastructure/storage"
)

func newStore(t *testing.T) (*storage.JSONStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewJSONStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestReadCustomers_SinArchivo_DevuelveColeccionVacia(t *testing.T) {
	store, _ := newStore(t)

	customers, err := store.ReadCustomers()
	require.NoError(t, err)
	assert.Empty(t, customers, "sin archivo guardado la colección es vacía, no un error")

	transactions, err := store.ReadTransactions()
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestWriteCustomers_RoundTrip(t *testing.T) {
	store, _ := newStore(t)

	in := []*entity.Customer{
		{ID: "c1", Name: "Alice", Phone: "555-0101", Address: "Dhaka", Website: "https://alice.example"},
		{ID: "c2", Name: "Bob"},
	}
	require.NoError(t, store.WriteCustomers(in))

	out, err := store.ReadCustomers()
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, in[0], out[0], "todos los campos deben sobrevivir el round-trip")
	assert.Equal(t, "Bob", out[1].Name)
}

func TestWriteTransactions_FormatoDelArchivo(t *testing.T) {
	store, dir := newStore(t)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	in := []*entity.Transaction{
		{
			ID:          "t1",
			CustomerID:  "c1",
			Type:        entity.TransactionCredit,
			Amount:      decimal.NewFromFloat(120.50),
			Date:        date,
			Description: "Initial due",
		},
	}
	require.NoError(t, store.WriteTransactions(in))

	// El contrato fija el formato durable: campos camelCase, fecha YYYY-MM-DD
	// y el monto como número JSON, no como string.
	raw, err := os.ReadFile(filepath.Join(dir, "transactions.json"))
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, `"customerId": "c1"`)
	assert.Contains(t, content, `"date": "2024-03-15"`)
	assert.Contains(t, content, `"amount": 120.5`)
	assert.NotContains(t, content, `"amount": "120.5"`, "el monto no debe serializarse como string")

	out, err := store.ReadTransactions()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, entity.TransactionCredit, out[0].Type)
	assert.True(t, out[0].Amount.Equal(decimal.NewFromFloat(120.50)))
	assert.True(t, out[0].Date.Equal(date), "la fecha debe sobrevivir el round-trip sin hora")
}

func TestWrite_ReemplazaElSnapshotAnterior(t *testing.T) {
	store, _ := newStore(t)

	require.NoError(t, store.WriteCustomers([]*entity.Customer{{ID: "c1", Name: "Alice"}}))
	require.NoError(t, store.WriteCustomers([]*entity.Customer{{ID: "c2", Name: "Bob"}}))

	out, err := store.ReadCustomers()
	require.NoError(t, err)
	require.Len(t, out, 1, "cada Write reemplaza el snapshot completo (last write wins)")
	assert.Equal(t, "Bob", out[0].Name)
}

func TestPreferences_LecturaEscritura(t *testing.T) {
	store, _ := newStore(t)

	_, found, err := store.ReadPreference("currency")
	require.NoError(t, err)
	assert.False(t, found, "preferencia ausente no es un error")

	require.NoError(t, store.WritePreference("currency", "USD"))
	require.NoError(t, store.WritePreference("theme", "dark"))
	require.NoError(t, store.WritePreference("currency", "EUR"))

	value, found, err := store.ReadPreference("currency")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "EUR", value, "la última escritura gana")

	value, found, err = store.ReadPreference("theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "dark", value)
}
