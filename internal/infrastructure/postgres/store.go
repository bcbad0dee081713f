package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mdmehedi135712-tech/account-books/internal/domain/entity"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/repository"
)

// Verificar en tiempo de compilación que Store implementa LedgerStore.
var _ repository.LedgerStore = (*Store)(nil)

// Store driver de persistencia alternativo sobre PostgreSQL. Respeta el mismo
// contrato de snapshot que el driver JSON: cada Write reemplaza la colección
// completa dentro de una transacción. La columna position preserva el orden de
// inserción de las colecciones en memoria. La integridad referencial
// (customerId existente) la garantiza el motor, no el esquema.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el store sobre un pool ya conectado.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema crea las tablas si no existen.
func (s *Store) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			phone    TEXT NOT NULL DEFAULT '',
			address  TEXT NOT NULL DEFAULT '',
			website  TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id          TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			type        TEXT NOT NULL,
			amount      NUMERIC NOT NULL,
			date        DATE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			position    INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	}
	return nil
}

// ReadCustomers devuelve la colección completa en orden de inserción.
func (s *Store) ReadCustomers() ([]*entity.Customer, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, name, phone, address, website FROM customers ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("leer clientes: %w", err)
	}
	defer rows.Close()

	customers := make([]*entity.Customer, 0)
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Address, &c.Website); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// WriteCustomers reemplaza el snapshot de clientes en una transacción.
func (s *Store) WriteCustomers(customers []*entity.Customer) error {
	return s.replaceAll("customers", func(ctx context.Context, tx pgx.Tx) error {
		for i, c := range customers {
			_, err := tx.Exec(ctx,
				`INSERT INTO customers (id, name, phone, address, website, position)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				c.ID, c.Name, c.Phone, c.Address, c.Website, i)
			if err != nil {
				return fmt.Errorf("insert cliente: %w", err)
			}
		}
		return nil
	})
}

// ReadTransactions devuelve la colección completa en orden de inserción.
func (s *Store) ReadTransactions() ([]*entity.Transaction, error) {
	rows, err := s.pool.Query(context.Background(),
		`SELECT id, customer_id, type, amount, date, description FROM transactions ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("leer transacciones: %w", err)
	}
	defer rows.Close()

	transactions := make([]*entity.Transaction, 0)
	for rows.Next() {
		var t entity.Transaction
		var txType string
		if err := rows.Scan(&t.ID, &t.CustomerID, &txType, &t.Amount, &t.Date, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transacción: %w", err)
		}
		t.Type = entity.TransactionType(txType)
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}

// WriteTransactions reemplaza el snapshot de transacciones en una transacción.
func (s *Store) WriteTransactions(transactions []*entity.Transaction) error {
	return s.replaceAll("transactions", func(ctx context.Context, tx pgx.Tx) error {
		for i, t := range transactions {
			_, err := tx.Exec(ctx,
				`INSERT INTO transactions (id, customer_id, type, amount, date, description, position)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				t.ID, t.CustomerID, string(t.Type), t.Amount, t.Date, t.Description, i)
			if err != nil {
				return fmt.Errorf("insert transacción: %w", err)
			}
		}
		return nil
	})
}

// ReadPreference devuelve el valor y true si la clave existe.
func (s *Store) ReadPreference(key string) (string, bool, error) {
	var value string
	err := s.pool.QueryRow(context.Background(),
		`SELECT value FROM preferences WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("leer preferencia: %w", err)
	}
	return value, true, nil
}

// WritePreference guarda o reemplaza una preferencia escalar.
func (s *Store) WritePreference(key, value string) error {
	_, err := s.pool.Exec(context.Background(),
		`INSERT INTO preferences (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		return fmt.Errorf("escribir preferencia: %w", err)
	}
	return nil
}

// replaceAll vacía la tabla y ejecuta los inserts del snapshot en una sola
// transacción: o se escribe el snapshot entero o no se escribe nada.
func (s *Store) replaceAll(table string, insert func(ctx context.Context, tx pgx.Tx) error) error {
	ctx := context.Background()
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM `+table); err != nil {
		return fmt.Errorf("vaciar %s: %w", table, err)
	}
	if err := insert(ctx, tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
