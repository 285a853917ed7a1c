package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/DjordjeVuckovic/calcfin/internal/fx"
	"github.com/DjordjeVuckovic/calcfin/internal/quickcalc"
	"github.com/DjordjeVuckovic/calcfin/internal/vat"
)

const (
	modeEval    = "eval"
	modeHistory = "history"
	modeVAT     = "vat"
	modeFX      = "fx"
)

type cliConfig struct {
	Mode        string
	Locale      string
	HistoryPath string

	VATMode string
	Rate    string
	Amount  string

	EUR     string
	USD     string
	FXRate  float64
	Refresh bool
	FXURL   string

	Args []string
}

func parseFlags(args []string, output io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&cfg.Mode, "mode", modeEval, "One of eval, history, vat, fx")
	fs.StringVar(&cfg.Locale, "locale", quickcalc.DefaultLocale, "Locale used to format results")
	fs.StringVar(&cfg.HistoryPath, "history", "", "JSON history file; eval results are saved when set")

	fs.StringVar(&cfg.VATMode, "vat-mode", string(vat.ModeAdd), "VAT mode: add (amount is net) or remove (amount is gross)")
	fs.StringVar(&cfg.Rate, "rate", "", "VAT rate in percent (defaults to 22)")
	fs.StringVar(&cfg.Amount, "amount", "", "VAT amount, comma or dot decimals")

	fs.StringVar(&cfg.EUR, "eur", "", "EUR amount to convert")
	fs.StringVar(&cfg.USD, "usd", "", "USD amount to convert, wins over -eur")
	fs.Float64Var(&cfg.FXRate, "fx-rate", fx.DefaultManualRate, "Manual EUR to USD rate")
	fs.BoolVar(&cfg.Refresh, "refresh", false, "Fetch the latest rate from Frankfurter before converting")
	fs.StringVar(&cfg.FXURL, "fx-url", fx.DefaultFrankfurterURL, "Frankfurter API base URL")

	if err := fs.Parse(args); err != nil {
		return cliConfig{}, err
	}
	cfg.Args = fs.Args()

	switch cfg.Mode {
	case modeEval, modeHistory, modeVAT, modeFX:
	default:
		return cliConfig{}, fmt.Errorf("unknown mode %q, expected one of eval, history, vat, fx", cfg.Mode)
	}
	if cfg.Mode == modeHistory && cfg.HistoryPath == "" {
		return cliConfig{}, fmt.Errorf("-history is required in history mode")
	}
	return cfg, nil
}
