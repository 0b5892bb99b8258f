package moneyfmt

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter da formato a montos con el símbolo de moneda configurado en Settings.
// Usa golang.org/x/text para el agrupado de miles según el locale.
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// New construye el formateador. symbol es el símbolo de Settings (ej. "₦", "$").
// localeTag vacío usa inglés (agrupado 1,234.56).
func New(symbol, localeTag string) *Formatter {
	tag := language.English
	if localeTag != "" {
		if parsed, err := language.Parse(localeTag); err == nil {
			tag = parsed
		}
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format devuelve el monto con símbolo y dos decimales, ej. "₦1,250.00".
func (f *Formatter) Format(amount decimal.Decimal) string {
	val, _ := amount.Round(2).Float64()
	return f.printer.Sprintf("%s%v", f.symbol, number.Decimal(val,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatQty devuelve una cantidad entera con agrupado de miles, ej. "12,400".
func (f *Formatter) FormatQty(qty int) string {
	return f.printer.Sprintf("%v", number.Decimal(qty))
}
