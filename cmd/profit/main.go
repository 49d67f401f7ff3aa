// Command profit prints one catalog message, e.g.
//
//	profit --lang en --key result --amount 100
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"profitbot/internal/domain"
	"profitbot/internal/infrastructure/i18n"
	"profitbot/pkg/amount"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("profit", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	lang := fs.StringP("lang", "l", domain.LanguagePersian.String(), "catalog language (fa, en)")
	key := fs.StringP("key", "k", domain.KeyResult.String(), "message key")
	raw := fs.StringP("amount", "a", "", "investment amount, required for the result key")
	rounding := fs.String("rounding", domain.DefaultRoundingMode.String(), "rounding mode (half_even, half_up)")
	localesDir := fs.String("locales", "", "directory of catalog override files")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "profit: %v\n", err)
		return 2
	}

	mode, err := domain.ParseRoundingMode(*rounding)
	if err != nil {
		fmt.Fprintf(stderr, "profit: %v\n", err)
		return 2
	}

	var investment *decimal.Decimal
	if *raw != "" {
		d, err := amount.Parse(*raw)
		if err != nil {
			fmt.Fprintf(stderr, "profit: %v\n", err)
			return 2
		}
		investment = &d
	}

	catalog, err := i18n.NewCatalog(i18n.Options{Rounding: mode, LocalesDir: *localesDir})
	if err != nil {
		fmt.Fprintf(stderr, "profit: %v\n", err)
		return 1
	}

	msg, err := catalog.Message(*lang, *key, investment)
	if err != nil {
		fmt.Fprintf(stderr, "profit: %s: %v\n", domain.Code(err), err)
		return 2
	}
	fmt.Fprintln(stdout, msg)
	return 0
}
