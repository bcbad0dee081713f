package repository

import "github.com/mdmehedi135712-tech/account-books/internal/domain/entity"

// Claves de preferencias escalares que persiste el store.
const (
	PrefCurrency = "currency"
	PrefTheme    = "theme"
)

// LedgerStore define el puerto de persistencia del libro de cuentas.
// El store es un espejo de durabilidad: se lee una vez al arrancar y se
// escribe el snapshot completo después de cada mutación. No es dueño de los
// datos; el Ledger Engine lo es.
type LedgerStore interface {
	// ReadCustomers devuelve la colección completa; slice vacío si no hay nada guardado.
	ReadCustomers() ([]*entity.Customer, error)
	// WriteCustomers reemplaza la colección guardada por el snapshot recibido.
	WriteCustomers(customers []*entity.Customer) error
	// ReadTransactions devuelve la colección completa; slice vacío si no hay nada guardado.
	ReadTransactions() ([]*entity.Transaction, error)
	// WriteTransactions reemplaza la colección guardada por el snapshot recibido.
	WriteTransactions(transactions []*entity.Transaction) error
	// ReadPreference devuelve el valor y true si la clave existe; "" y false si no.
	ReadPreference(key string) (string, bool, error)
	// WritePreference guarda o reemplaza una preferencia escalar.
	WritePreference(key, value string) error
}
