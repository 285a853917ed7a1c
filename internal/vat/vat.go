// Package vat adds VAT to a net amount or removes it from a gross one.
package vat

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/calcfin/pkg/utils"
)

type Mode string

const (
	ModeAdd    Mode = "add"
	ModeRemove Mode = "remove"
)

const (
	DefaultRate   = 22.0
	centsDecimals = 2
)

// DefaultPresets are the Italian VAT rates offered as shortcuts.
var DefaultPresets = []float64{4, 5, 10, 22}

var (
	ErrInvalidMode   = errors.New("invalid vat mode")
	ErrInvalidRate   = errors.New("invalid vat rate")
	ErrInvalidAmount = errors.New("invalid amount")
)

type Breakdown struct {
	Mode  Mode    `json:"mode"`
	Rate  float64 `json:"rate"`
	Net   float64 `json:"net"`
	VAT   float64 `json:"vat"`
	Gross float64 `json:"gross"`
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAdd, ModeRemove:
		return m, nil
	case "":
		return ModeAdd, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Compute splits amount into net, VAT and gross at ratePercent.
// In add mode amount is the net value, in remove mode it is the gross value.
// The derived side is rounded to cents.
func Compute(mode Mode, ratePercent, amount float64) (Breakdown, error) {
	if !utils.IsFinite(ratePercent) || ratePercent <= -100 {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrInvalidRate, ratePercent)
	}
	if !utils.IsFinite(amount) {
		return Breakdown{}, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}

	factor := 1 + ratePercent/100
	b := Breakdown{Mode: mode, Rate: ratePercent}

	switch mode {
	case ModeAdd:
		b.Net = amount
		b.Gross = utils.RoundDecimal(amount*factor, centsDecimals)
	case ModeRemove:
		b.Gross = amount
		b.Net = utils.RoundDecimal(amount/factor, centsDecimals)
	default:
		return Breakdown{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	b.VAT = utils.RoundDecimal(b.Gross-b.Net, centsDecimals)

	return b, nil
}

// ParseDecimal reads the longest numeric prefix of s, accepting a comma as
// decimal separator. Input without a numeric prefix reads as zero.
func ParseDecimal(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	end, seenDot, seenDigit := 0, false, false
	for i, r := range s {
		switch {
		case r >= '0' && r <= '9':
			seenDigit = true
		case r == '.' && !seenDot:
			seenDot = true
		case (r == '-' || r == '+') && i == 0:
		default:
			return parsePrefix(s[:end], seenDigit)
		}
		end = i + 1
	}
	return parsePrefix(s[:end], seenDigit)
}

func parsePrefix(s string, seenDigit bool) float64 {
	if !seenDigit {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "."), 64)
	if err != nil {
		return 0
	}
	return v
}
