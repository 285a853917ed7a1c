package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/DjordjeVuckovic/calcfin/internal/domain"
	"github.com/DjordjeVuckovic/calcfin/internal/fx"
	"github.com/DjordjeVuckovic/calcfin/internal/quickcalc"
	"github.com/DjordjeVuckovic/calcfin/internal/storage"
	"github.com/DjordjeVuckovic/calcfin/internal/storage/jsonfile"
	"github.com/DjordjeVuckovic/calcfin/internal/vat"
)

const invalidExpression = "invalid expression"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("calc failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg cliConfig, in io.Reader, out io.Writer) error {
	switch cfg.Mode {
	case modeVAT:
		return runVAT(cfg, out)
	case modeFX:
		return runFX(ctx, cfg, out)
	}

	formatter, err := quickcalc.NewFormatter(cfg.Locale)
	if err != nil {
		return err
	}

	var history storage.HistoryStore
	if cfg.HistoryPath != "" {
		history, err = jsonfile.NewJsonFileStorer(cfg.HistoryPath, domain.HistoryDefaultCapacity)
		if err != nil {
			return err
		}
	}
	calc := quickcalc.NewCalculator(history, quickcalc.WithFormatter(formatter))

	if cfg.Mode == modeHistory {
		return printHistory(ctx, calc, out)
	}
	return runEval(ctx, calc, history != nil, cfg.Args, in, out)
}

// runEval evaluates the joined arguments, or each stdin line when there are none.
func runEval(ctx context.Context, calc *quickcalc.Calculator, save bool, args []string, in io.Reader, out io.Writer) error {
	eval := func(line string) {
		var (
			formatted string
			err       error
		)
		if save {
			var entry domain.HistoryEntry
			entry, err = calc.Save(ctx, line)
			formatted = entry.Result
		} else {
			var res quickcalc.Result
			res, err = calc.Calculate(ctx, line)
			formatted = res.Formatted
		}
		if err != nil {
			slog.Debug("Evaluation failed", "expression", line, "error", err)
			formatted = invalidExpression
		}
		fmt.Fprintln(out, formatted)
	}

	if len(args) > 0 {
		eval(strings.Join(args, " "))
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		eval(line)
	}
	return scanner.Err()
}

func printHistory(ctx context.Context, calc *quickcalc.Calculator, out io.Writer) error {
	entries, _, err := calc.History(ctx, 0, domain.HistoryDefaultCapacity)
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s = %s\n", e.Expression, e.Result)
	}
	return nil
}

func runVAT(cfg cliConfig, out io.Writer) error {
	mode, err := vat.ParseMode(cfg.VATMode)
	if err != nil {
		return err
	}
	rate := vat.DefaultRate
	if cfg.Rate != "" {
		rate = vat.ParseDecimal(cfg.Rate)
	}

	b, err := vat.Compute(mode, rate, vat.ParseDecimal(cfg.Amount))
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "net %.2f  vat(%g%%) %.2f  gross %.2f\n", b.Net, b.Rate, b.VAT, b.Gross)
	return nil
}

func runFX(ctx context.Context, cfg cliConfig, out io.Writer) error {
	var provider fx.RateProvider
	if cfg.Refresh {
		client, err := fx.NewFrankfurterClient(cfg.FXURL)
		if err != nil {
			return err
		}
		provider = client
	}

	svc, err := fx.NewService(provider, cfg.FXRate)
	if err != nil {
		return err
	}
	if cfg.Refresh {
		if _, err := svc.Refresh(ctx); err != nil && !errors.Is(err, fx.ErrNoProvider) {
			slog.Warn("Using manual rate", "rate", cfg.FXRate, "error", err)
		}
	}

	var req fx.ConvertRequest
	if cfg.EUR != "" {
		v := vat.ParseDecimal(cfg.EUR)
		req.EUR = &v
	}
	if cfg.USD != "" {
		v := vat.ParseDecimal(cfg.USD)
		req.USD = &v
	}

	conv, err := svc.Convert(req)
	if err != nil {
		return err
	}
	q := svc.Quote()
	fmt.Fprintf(out, "%.2f EUR = %.2f USD  (rate %.4f, %s)\n", conv.EUR, conv.USD, conv.Rate, q.Info)
	return nil
}
