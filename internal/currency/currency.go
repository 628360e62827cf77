// Package currency converts home-currency amounts into display currencies.
package currency

import (
	"fmt"
	"math"
	"strings"

	"github.com/Veraticus/logistics-pro/internal/common"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is a supported display currency.
type Currency string

const (
	RUB Currency = "RUB"
	USD Currency = "USD"
	CNY Currency = "CNY"
)

// Home is the currency every stored amount is held in.
const Home = RUB

// Default is used when no valid preference exists.
const Default = RUB

type spec struct {
	symbol string
	rate   decimal.Decimal
}

// Rates are units of the target currency per one home unit.
var specs = map[Currency]spec{
	RUB: {symbol: "₽", rate: decimal.NewFromInt(1)},
	USD: {symbol: "$", rate: decimal.RequireFromString("0.011")},
	CNY: {symbol: "¥", rate: decimal.RequireFromString("0.078")},
}

// Currencies returns the supported currencies in selector order.
func Currencies() []Currency {
	return []Currency{RUB, USD, CNY}
}

// Parse validates a stored or requested currency code.
func Parse(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := specs[c]; ok {
		return c, nil
	}
	return Default, fmt.Errorf("%w: %q", common.ErrUnknownCurrency, s)
}

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	_, ok := specs[c]
	return ok
}

// Rate returns the conversion rate from home to c. Unknown currencies use the home rate.
func (c Currency) Rate() decimal.Decimal {
	if s, ok := specs[c]; ok {
		return s.rate
	}
	return specs[Home].rate
}

// Symbol returns the display symbol for c.
func (c Currency) Symbol() string {
	if s, ok := specs[c]; ok {
		return s.symbol
	}
	return specs[Home].symbol
}

// SelectorLabel returns the text shown in the currency selector.
func (c Currency) SelectorLabel() string {
	return c.Symbol() + " " + string(c)
}

// Convert returns home * rate[target]. No rounding is applied.
func Convert(home decimal.Decimal, target Currency) decimal.Decimal {
	return home.Mul(target.Rate())
}

// Formatter renders amounts with locale-aware digit grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given language.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// Grouping goes through int64; larger magnitudes print ungrouped.
var (
	maxGrouped = decimal.NewFromInt(math.MaxInt64)
	minGrouped = maxGrouped.Neg()
)

// Format renders an amount already expressed in c: the symbol followed by the
// amount rounded to the nearest whole unit.
func (f Formatter) Format(amount decimal.Decimal, c Currency) string {
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}

	rounded := amount.Round(0)
	if rounded.GreaterThan(maxGrouped) || rounded.LessThan(minGrouped) {
		if rounded.IsNegative() {
			return "-" + c.Symbol() + rounded.Neg().String()
		}
		return c.Symbol() + rounded.String()
	}

	units := rounded.IntPart()
	if units < 0 {
		return "-" + c.Symbol() + p.Sprintf("%d", -units)
	}
	return c.Symbol() + p.Sprintf("%d", units)
}

// Price converts a home amount to c and formats it.
func (f Formatter) Price(home decimal.Decimal, c Currency) string {
	return f.Format(Convert(home, c), c)
}
