// Package currency formatea montos para mostrarlos con el símbolo y las
// convenciones de la moneda indicada. Utilidad pura, sin estado: la app no
// convierte entre monedas, solo etiqueta montos para display.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer con locale en-US, igual que el display original de la app.
var printer = message.NewPrinter(language.AmericanEnglish)

// Format produce la representación localizada de amount en la moneda code
// (ISO 4217 de 3 letras): símbolo, separador de miles y los decimales propios
// de la moneda (2 para USD, 0 para JPY, etc.). Un código desconocido degrada a
// "CODE 12.34" en vez de fallar: la moneda es una etiqueta de display, nunca
// debe tumbar una vista.
func Format(code string, amount decimal.Decimal) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%s %s", strings.ToUpper(code), amount.StringFixed(2))
	}
	scale, _ := currency.Standard.Rounding(unit)
	value, _ := amount.Float64()
	symbol := printer.Sprint(currency.Symbol(unit))
	return printer.Sprintf("%s%v", symbol, number.Decimal(value, number.Scale(scale)))
}

// FormatterFor devuelve una función de formateo ligada a una moneda, para
// pasarla como dependencia (p. ej. al redactor de recordatorios).
func FormatterFor(code string) func(decimal.Decimal) string {
	return func(amount decimal.Decimal) string {
		return Format(code, amount)
	}
}
