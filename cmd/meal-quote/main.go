// Command meal-quote prints the tax, tip and total for each meal price given
// on the command line.
//
//	meal-quote 100 12.50
//	meal-quote -json 42
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"meal-estimator/internal/config"
	"meal-estimator/internal/logger"
	"meal-estimator/internal/pricing"
)

func main() {
	jsonOut := flag.Bool("json", false, "print one JSON object per price")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-json] price...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(logger.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if failed := run(os.Stdout, log, flag.Args(), *jsonOut); failed > 0 {
		os.Exit(1)
	}
}

// run prints a quote per price and returns how many prices were invalid.
func run(w io.Writer, log logger.Logger, prices []string, jsonOut bool) int {
	enc := json.NewEncoder(w)
	failed := 0

	for _, price := range prices {
		quote, err := pricing.Calculate(price)
		if err != nil {
			failed++
			log.Warning("Quote", "invalid price", map[string]interface{}{"input": price})
			if jsonOut {
				_ = enc.Encode(map[string]string{"input": price, "error": pricing.InvalidInputMessage})
			} else {
				fmt.Fprintf(w, "%s: %s\n", price, pricing.InvalidInputMessage)
			}
			continue
		}

		if jsonOut {
			_ = enc.Encode(quote)
			continue
		}
		lines := pricing.Render(quote)
		fmt.Fprintf(w, "%s: %s, %s, %s\n", price, lines.Tax, lines.Tip, lines.Total)
	}
	return failed
}
