// vendite-query runs a single point query against the configured source
// and prints the result, for scripting and smoke checks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"vendite/internal/backend"
	"vendite/internal/cli"
	"vendite/internal/core"
	"vendite/internal/ledger"
)

func main() {
	var (
		country = flag.String("country", "", "country to match")
		product = flag.String("product", "", "product to match")
		date    = flag.String("date", "", "exact date filter (overrides -year)")
		year    = flag.String("year", "", "calendar year filter, or 'All'")
	)
	flag.Parse()

	cli.LoadEnvFile()
	logger := cli.SetupLogger()
	cfg := cli.LoadAndValidateConfig(logger)

	filter, err := buildFilter(*date, *year)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx := context.Background()
	src, err := backend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize source backend", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}

	led, err := ledger.Load(ctx, src)
	if err != nil {
		logger.Error("Failed to load ledger", "error", err, "backend", cfg.SourceBackend)
		os.Exit(1)
	}

	sum, ok := led.Query(*country, *product, filter)
	if !ok {
		fmt.Println("No data found for this combination of inputs.")
		return
	}
	fmt.Printf("amount: %s\nboxes: %s\n", sum.AmountString(), sum.BoxesString())
}

func buildFilter(date, year string) (core.TimeFilter, error) {
	filter := core.AllTime()
	if year != "" && !strings.EqualFold(year, core.AllYears) {
		y, err := strconv.Atoi(year)
		if err != nil {
			return core.TimeFilter{}, fmt.Errorf("invalid -year %q", year)
		}
		filter = core.Year(y)
	}
	if date != "" {
		d, ok := ledger.ParseDate(date)
		if !ok {
			return core.TimeFilter{}, fmt.Errorf("invalid -date %q", date)
		}
		filter = core.ExactDate(d)
	}
	return filter, nil
}
