package quickcalc

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder is rendered for results that are not finite numbers.
const Placeholder = "–"

const (
	DefaultLocale     = "it"
	maxFractionDigits = 10
)

// Formatter renders numbers using locale-specific grouping and decimal marks.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 locale tag such as "it" or "en-US".
func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return &Formatter{printer: message.NewPrinter(tag)}, nil
}

func (f *Formatter) Format(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
}
