// Package storage implementa el driver de persistencia por defecto: dos
// colecciones JSON planas más un archivo de preferencias, bajo un directorio
// de datos. Es el equivalente del espejo en localStorage de la app original:
// un sumidero de durabilidad que se lee una vez y se sobreescribe entero en
// cada mutación (last write wins).
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/repository"
)

// Verificar en tiempo de compilación que JSONStore implementa LedgerStore.
var _ repository.LedgerStore = (*JSONStore)(nil)

const (
	customersFile    = "customers.json"
	transactionsFile = "transactions.json"
	preferencesFile  = "preferences.json"

	dateLayout = "2006-01-02"
)

// JSONStore store de archivos JSON bajo dir.
type JSONStore struct {
	dir string
}

// NewJSONStore construye el store y crea el directorio de datos si no existe.
func NewJSONStore(dir string) (*JSONStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &JSONStore{dir: dir}, nil
}

// ── Registros serializados (campos camelCase, como el payload original) ───────

type customerRecord struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Website string `json:"website,omitempty"`
}

type transactionRecord struct {
	ID          string          `json:"id"`
	CustomerID  string          `json:"customerId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description,omitempty"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ReadCustomers devuelve la colección guardada; vacía si el archivo no existe.
func (s *JSONStore) ReadCustomers() ([]*entity.Customer, error) {
	var records []customerRecord
	if err := s.readJSON(customersFile, &records); err != nil {
		return nil, err
	}
	customers := make([]*entity.Customer, 0, len(records))
	for _, r := range records {
		customers = append(customers, &entity.Customer{
			ID:      r.ID,
			Name:    r.Name,
			Phone:   r.Phone,
			Address: r.Address,
			Website: r.Website,
		})
	}
	return customers, nil
}

// WriteCustomers reemplaza la colección guardada.
func (s *JSONStore) WriteCustomers(customers []*entity.Customer) error {
	records := make([]customerRecord, 0, len(customers))
	for _, c := range customers {
		records = append(records, customerRecord{
			ID:      c.ID,
			Name:    c.Name,
			Phone:   c.Phone,
			Address: c.Address,
			Website: c.Website,
		})
	}
	return s.writeJSON(customersFile, records)
}

// ReadTransactions devuelve la colección guardada; vacía si el archivo no existe.
func (s *JSONStore) ReadTransactions() ([]*entity.Transaction, error) {
	var records []transactionRecord
	if err := s.readJSON(transactionsFile, &records); err != nil {
		return nil, err
	}
	transactions := make([]*entity.Transaction, 0, len(records))
	for _, r := range records {
		date, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida en transacción %s: %w", r.ID, err)
		}
		transactions = append(transactions, &entity.Transaction{
			ID:          r.ID,
			CustomerID:  r.CustomerID,
			Type:        entity.TransactionType(r.Type),
			Amount:      r.Amount,
			Date:        date,
			Description: r.Description,
		})
	}
	return transactions, nil
}

// WriteTransactions reemplaza la colección guardada.
func (s *JSONStore) WriteTransactions(transactions []*entity.Transaction) error {
	records := make([]transactionRecord, 0, len(transactions))
	for _, t := range transactions {
		records = append(records, transactionRecord{
			ID:          t.ID,
			CustomerID:  t.CustomerID,
			Type:        string(t.Type),
			Amount:      t.Amount,
			Date:        t.Date.Format(dateLayout),
			Description: t.Description,
		})
	}
	return s.writeJSON(transactionsFile, records)
}

// ReadPreference devuelve el valor y true si la clave existe.
func (s *JSONStore) ReadPreference(key string) (string, bool, error) {
	prefs, err := s.readPreferences()
	if err != nil {
		return "", false, err
	}
	value, ok := prefs[key]
	return value, ok, nil
}

// WritePreference guarda o reemplaza una preferencia escalar.
func (s *JSONStore) WritePreference(key, value string) error {
	prefs, err := s.readPreferences()
	if err != nil {
		return err
	}
	prefs[key] = value
	return s.writeJSON(preferencesFile, prefs)
}

// ── Helpers de archivo ────────────────────────────────────────────────────────

func (s *JSONStore) readPreferences() (map[string]string, error) {
	prefs := map[string]string{}
	if err := s.readJSON(preferencesFile, &prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

// readJSON deserializa el archivo en v; un archivo inexistente deja v intacto.
func (s *JSONStore) readJSON(name string, v interface{}) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("leer %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("parsear %s: %w", name, err)
	}
	return nil
}

// writeJSON escribe de forma atómica: archivo temporal + rename, para no dejar
// un JSON truncado si el proceso muere a mitad de escritura.
func (s *JSONStore) writeJSON(name string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("renombrar %s: %w", name, err)
	}
	return nil
}
