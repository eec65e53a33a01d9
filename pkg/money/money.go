// Package money formatea importes de la tienda según el idioma configurado.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea importes con dos decimales seguidos del código de moneda.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter construye el formatter. Un locale inválido cae a francés.
func NewFormatter(locale, currency string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	return Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Format ej: 1287 con locale "en" y moneda "MAD" -> "1,287.00 MAD".
func (f Formatter) Format(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	if f.printer != nil {
		s = f.printer.Sprint(number.Decimal(amount.InexactFloat64(), number.Scale(2)))
	}
	if f.currency == "" {
		return s
	}
	return s + " " + f.currency
}

// Total precio unitario por cantidad.
func Total(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}
