// Package ledger implementa el motor del libro de cuentas: es el dueño en
// memoria de las colecciones de clientes y transacciones, calcula saldos
// pendientes y produce los listados de los reportes.
//
// Invariantes:
//   - Las transacciones son append-only; los clientes se editan in place pero
//     nunca cambian de ID.
//   - El saldo pendiente (due) de un cliente es Σ créditos − Σ pagos y se
//     recalcula siempre desde las transacciones; nunca se cachea.
//   - Ninguna transacción referencia un cliente inexistente en el momento de crearla.
//   - Hay un único escritor lógico: el mutex serializa las mutaciones aunque el
//     colaborador HTTP atienda peticiones en paralelo.
package ledger

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mdmehedi135712-tech/account-books/internal/application/dto"
	"github.com/mdmehedi135712-tech/account-books/internal/domain"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/repository"
	"github.com/mdmehedi135712-tech/account-books/pkg/logger"
)

// initialDueDescription descripción de la transacción sintética que se crea
// junto con un cliente nuevo cuando trae deuda inicial.
const initialDueDescription = "Initial due"

// dateLayout formato de fecha de calendario (sin hora).
const dateLayout = "2006-01-02"

// DueSummaryEntry entrada del reporte de deudas: cliente + saldo pendiente.
type DueSummaryEntry struct {
	Customer *entity.Customer
	Due      decimal.Decimal
}

// LedgerUseCase motor del libro de cuentas. Dueño exclusivo de ambas
// colecciones durante la vida del proceso; el store es solo un espejo de
// durabilidad que se escribe después de cada mutación.
type LedgerUseCase struct {
	mu    sync.Mutex
	store repository.LedgerStore
	log   *logger.Logger

	customers    []*entity.Customer
	transactions []*entity.Transaction
}

// NewLedgerUseCase construye el motor. Llamar Load antes de usarlo.
func NewLedgerUseCase(store repository.LedgerStore, log *logger.Logger) *LedgerUseCase {
	return &LedgerUseCase{store: store, log: log}
}

// Load lee el snapshot persistido una única vez, al arrancar.
func (uc *LedgerUseCase) Load() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	customers, err := uc.store.ReadCustomers()
	if err != nil {
		return err
	}
	transactions, err := uc.store.ReadTransactions()
	if err != nil {
		return err
	}
	uc.customers = customers
	uc.transactions = transactions
	return nil
}

// AddCustomer crea un cliente nuevo. Si initial_due > 0 crea además una
// transacción de crédito "Initial due" con fecha de hoy; ambos efectos se
// aplican juntos (o ninguno, si la validación falla antes).
func (uc *LedgerUseCase) AddCustomer(in dto.AddCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialDue.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	customer := &entity.Customer{
		ID:      uuid.New().String(),
		Name:    name,
		Phone:   in.Phone,
		Address: in.Address,
		Website: in.Website,
	}
	uc.customers = append(uc.customers, customer)

	if in.InitialDue.IsPositive() {
		uc.transactions = append(uc.transactions, &entity.Transaction{
			ID:          uuid.New().String(),
			CustomerID:  customer.ID,
			Type:        entity.TransactionCredit,
			Amount:      in.InitialDue,
			Date:        today(),
			Description: initialDueDescription,
		})
	}

	uc.persistLocked()
	return customer, nil
}

// UpdateCustomer reemplaza los campos mutables de un cliente existente.
// No toca ni el ID ni el historial de transacciones.
func (uc *LedgerUseCase) UpdateCustomer(id string, in dto.UpdateCustomerRequest) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	customer := uc.findCustomerLocked(id)
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	customer.Name = name
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.Website = in.Website

	uc.persistLocked()
	return customer, nil
}

// GetCustomer devuelve un cliente por ID.
func (uc *LedgerUseCase) GetCustomer(id string) (*entity.Customer, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	customer := uc.findCustomerLocked(id)
	if customer == nil {
		return nil, domain.ErrCustomerNotFound
	}
	return customer, nil
}

// AddTransaction registra un movimiento para un cliente existente.
// El monto debe ser estrictamente positivo; la fecha vacía se toma como hoy.
func (uc *LedgerUseCase) AddTransaction(customerID string, in dto.AddTransactionRequest) (*entity.Transaction, error) {
	txType := entity.TransactionType(in.Type)
	if !txType.IsValid() {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := today()
	if in.Date != "" {
		parsed, err := time.Parse(dateLayout, in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		date = parsed
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findCustomerLocked(customerID) == nil {
		return nil, domain.ErrCustomerNotFound
	}

	tx := &entity.Transaction{
		ID:          uuid.New().String(),
		CustomerID:  customerID,
		Type:        txType,
		Amount:      in.Amount,
		Date:        date,
		Description: in.Description,
	}
	uc.transactions = append(uc.transactions, tx)

	uc.persistLocked()
	return tx, nil
}

// GetDue devuelve el saldo pendiente del cliente: Σ créditos − Σ pagos.
// Cero para un cliente sin transacciones; ErrCustomerNotFound si no existe.
func (uc *LedgerUseCase) GetDue(customerID string) (decimal.Decimal, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findCustomerLocked(customerID) == nil {
		return decimal.Zero, domain.ErrCustomerNotFound
	}
	return uc.dueLocked(customerID), nil
}

// GetTotalDue suma el saldo pendiente de todos los clientes.
func (uc *LedgerUseCase) GetTotalDue() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	total := decimal.Zero
	for _, c := range uc.customers {
		total = total.Add(uc.dueLocked(c.ID))
	}
	return total
}

// ListCustomers devuelve los clientes en orden de inserción. Si filter no está
// vacío, filtra por subcadena del nombre sin distinguir mayúsculas.
func (uc *LedgerUseCase) ListCustomers(filter string) []*entity.Customer {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	needle := strings.ToLower(strings.TrimSpace(filter))
	out := make([]*entity.Customer, 0, len(uc.customers))
	for _, c := range uc.customers {
		if needle == "" || strings.Contains(strings.ToLower(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// ListTransactions devuelve los movimientos de un cliente ordenados por fecha
// descendente; a igual fecha, el insertado más recientemente primero.
func (uc *LedgerUseCase) ListTransactions(customerID string) ([]*entity.Transaction, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.findCustomerLocked(customerID) == nil {
		return nil, domain.ErrCustomerNotFound
	}

	// Recorrer en orden de inserción inverso y luego ordenar de forma estable
	// por fecha: los empates quedan con la inserción más reciente primero.
	out := make([]*entity.Transaction, 0)
	for i := len(uc.transactions) - 1; i >= 0; i-- {
		if uc.transactions[i].CustomerID == customerID {
			out = append(out, uc.transactions[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

// ListDueSummary devuelve los clientes con saldo pendiente > 0, ordenados por
// deuda descendente; a igual deuda, por orden de inserción del cliente.
func (uc *LedgerUseCase) ListDueSummary() []DueSummaryEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]DueSummaryEntry, 0)
	for _, c := range uc.customers {
		due := uc.dueLocked(c.ID)
		if due.IsPositive() {
			out = append(out, DueSummaryEntry{Customer: c, Due: due})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Due.GreaterThan(out[j].Due)
	})
	return out
}

// ── Helpers internos (requieren el mutex tomado) ──────────────────────────────

func (uc *LedgerUseCase) findCustomerLocked(id string) *entity.Customer {
	for _, c := range uc.customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// dueLocked recalcula el saldo desde las transacciones, sin caché.
func (uc *LedgerUseCase) dueLocked(customerID string) decimal.Decimal {
	due := decimal.Zero
	for _, t := range uc.transactions {
		if t.CustomerID == customerID {
			due = due.Add(t.Signed())
		}
	}
	return due
}

// persistLocked escribe el snapshot completo en el store. El store es un
// write-through fire-and-forget: un fallo se registra pero no revierte la
// mutación en memoria (la durabilidad es responsabilidad del colaborador).
func (uc *LedgerUseCase) persistLocked() {
	if err := uc.store.WriteCustomers(uc.customers); err != nil {
		uc.log.Warn().Err(err).Msg("persistir clientes")
	}
	if err := uc.store.WriteTransactions(uc.transactions); err != nil {
		uc.log.Warn().Err(err).Msg("persistir transacciones")
	}
}

// today fecha de calendario de hoy, truncada a medianoche UTC.
func today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
