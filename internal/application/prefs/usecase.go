// Package prefs gestiona las dos preferencias escalares de display de la app:
// la moneda (código ISO 4217, solo etiqueta de display) y el tema.
package prefs

import (
	"strings"

	"github.com/mdmehedi135712-tech/account-books/internal/domain"
	"github.com/mdmehedi135712-tech/account-books/internal/domain/repository"
)

// Valores por defecto cuando el store no tiene nada guardado.
const (
	DefaultCurrency = "BDT"
	DefaultTheme    = "light"
)

// PreferenceUseCase lee y escribe preferencias a través del store.
type PreferenceUseCase struct {
	store repository.LedgerStore
}

// NewPreferenceUseCase construye el caso de uso.
func NewPreferenceUseCase(store repository.LedgerStore) *PreferenceUseCase {
	return &PreferenceUseCase{store: store}
}

// Get devuelve el valor de la preferencia, o su default si no hay nada guardado.
func (uc *PreferenceUseCase) Get(key string) (string, error) {
	def, ok := defaultFor(key)
	if !ok {
		return "", domain.ErrInvalidInput
	}
	value, found, err := uc.store.ReadPreference(key)
	if err != nil {
		return "", err
	}
	if !found || value == "" {
		return def, nil
	}
	return value, nil
}

// Set valida y persiste la preferencia.
func (uc *PreferenceUseCase) Set(key, value string) error {
	switch key {
	case repository.PrefCurrency:
		value = strings.ToUpper(strings.TrimSpace(value))
		if len(value) != 3 {
			return domain.ErrInvalidInput
		}
	case repository.PrefTheme:
		if value != "light" && value != "dark" {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	return uc.store.WritePreference(key, value)
}

// Currency devuelve el código de moneda activo para display.
func (uc *PreferenceUseCase) Currency() (string, error) {
	return uc.Get(repository.PrefCurrency)
}

func defaultFor(key string) (string, bool) {
	switch key {
	case repository.PrefCurrency:
		return DefaultCurrency, true
	case repository.PrefTheme:
		return DefaultTheme, true
	default:
		return "", false
	}
}
