// Package format renders fuel figures as display strings and assembles the
// summary and report payloads handed to share and export.
package format

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	DefaultLocale = "en-IN"
	DefaultSymbol = "₹"

	placeholder = "—"
)

// Formatter renders values for one locale and currency symbol.
type Formatter struct {
	tag    language.Tag
	symbol string
}

// New returns a formatter for locale. An empty or unparseable locale uses
// en-IN; an empty symbol uses ₹.
func New(locale, symbol string) Formatter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil || tag == language.Und {
		tag = language.MustParse(DefaultLocale)
	}
	if strings.TrimSpace(symbol) == "" {
		symbol = DefaultSymbol
	}
	return Formatter{tag: tag, symbol: symbol}
}

// Default returns the en-IN rupee formatter.
func Default() Formatter {
	return New(DefaultLocale, DefaultSymbol)
}

// Locale returns the BCP 47 tag in use.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Symbol returns the currency symbol.
func (f Formatter) Symbol() string {
	if f.symbol == "" {
		return DefaultSymbol
	}
	return f.symbol
}

// Currency renders v with two decimals and the symbol, e.g. "₹1,234.50".
// Non-finite values render as zero.
func (f Formatter) Currency(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	p := message.NewPrinter(f.tagOrDefault())
	digits := p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return sign + f.Symbol() + digits
}

// Number renders v with up to digits decimals. Non-finite values render
// as a dash.
func (f Formatter) Number(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return placeholder
	}
	if digits < 0 {
		digits = 0
	}
	p := message.NewPrinter(f.tagOrDefault())
	return p.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(0), number.MaxFractionDigits(digits)))
}

func (f Formatter) tagOrDefault() language.Tag {
	if f.tag == language.Und {
		return language.MustParse(DefaultLocale)
	}
	return f.tag
}
