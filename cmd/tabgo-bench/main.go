// Package main implements the tabgo-bench binary. It loads a storage
// variant with generated data, replays the fixed query mix and prints a
// per-operation timing report, or cross-checks all variants with --verify.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/hupe1980/tabgo/workload"
)

func main() {
	defaults := workload.DefaultConfig()

	// Parse command line flags
	var (
		configFile  string
		seed        int64
		rows        int
		cols        int
		queries     int
		maxValue    int
		variant     string
		indexColumn int
		verify      bool
	)

	flag.StringVar(&configFile, "config", "", "Path to configuration file (YAML or JSON)")
	flag.Int64Var(&seed, "seed", defaults.Seed, "Seed for the data generator and query thresholds")
	flag.IntVar(&rows, "rows", defaults.Rows, "Number of rows to generate and load")
	flag.IntVar(&cols, "cols", defaults.Cols, "Number of columns to generate")
	flag.IntVar(&queries, "queries", defaults.Queries, "Number of query mix iterations")
	flag.IntVar(&maxValue, "max-value", int(defaults.MaxValue), "Exclusive upper bound on cells and thresholds")
	flag.StringVar(&variant, "variant", defaults.Variant, "Storage variant: rowmajor, indexed, columnar")
	flag.IntVar(&indexColumn, "index-column", defaults.IndexColumn, "Column the indexed variant indexes")
	flag.BoolVar(&verify, "verify", false, "Run all variants and fail on any divergence")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "tabgo-bench - replay the fixed query mix against a tabgo variant\n\n")
		fmt.Fprintf(os.Stderr, "Usage: tabgo-bench [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tabgo-bench --variant columnar\n")
		fmt.Fprintf(os.Stderr, "  tabgo-bench --variant indexed --index-column 2 --rows 1000000\n")
		fmt.Fprintf(os.Stderr, "  tabgo-bench --config bench.yaml --verify\n")
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  TABGO_SEED          Seed for data and thresholds\n")
		fmt.Fprintf(os.Stderr, "  TABGO_ROWS          Number of rows\n")
		fmt.Fprintf(os.Stderr, "  TABGO_COLS          Number of columns\n")
		fmt.Fprintf(os.Stderr, "  TABGO_QUERIES       Number of query mix iterations\n")
		fmt.Fprintf(os.Stderr, "  TABGO_MAX_VALUE     Exclusive upper bound on cell values\n")
		fmt.Fprintf(os.Stderr, "  TABGO_VARIANT       Storage variant\n")
		fmt.Fprintf(os.Stderr, "  TABGO_INDEX_COLUMN  Indexed variant column\n")
	}

	flag.Parse()

	// Load configuration: file, then environment, then explicit flags
	var cfg *workload.Config
	if configFile != "" {
		c, err := workload.LoadFromFile(configFile)
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		cfg = c
	} else {
		cfg = workload.DefaultConfig()
	}

	workload.ApplyEnv(cfg)

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = seed
		case "rows":
			cfg.Rows = rows
		case "cols":
			cfg.Cols = cols
		case "queries":
			cfg.Queries = queries
		case "max-value":
			cfg.MaxValue = int32(maxValue)
		case "variant":
			cfg.Variant = variant
		case "index-column":
			cfg.IndexColumn = indexColumn
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if verify {
		runVerify(ctx, cfg)
		return
	}

	report, err := workload.Run(ctx, cfg)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}

	printReport(report)
}

func runVerify(ctx context.Context, cfg *workload.Config) {
	reports, err := workload.Verify(ctx, cfg)

	for _, report := range reports {
		if report != nil {
			printReport(report)
		}
	}

	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "verify failed: %v\n", err)
		os.Exit(1)
	}

	color.New(color.FgGreen, color.Bold).Printf("verify passed: all variants agree on final result %d\n", reports[0].FinalResult)
}

func printReport(report *workload.Report) {
	title := color.New(color.FgCyan, color.Bold)
	header := color.New(color.Bold)
	result := color.New(color.FgGreen)

	title.Printf("tabgo-bench: variant %s\n", report.Variant)
	fmt.Printf("seed %d, %d rows, %d cols, %d queries\n", report.Seed, report.Rows, report.Cols, report.Queries)
	if report.LoadTime > 0 {
		fmt.Printf("load took %s\n", report.LoadTime)
	}
	fmt.Println()

	header.Printf("%-28s %6s %12s %10s %10s %10s\n", "operation", "calls", "total", "avg", "min", "max")

	ops := []struct {
		name  string
		stats workload.OpStats
	}{
		{"predicated update", report.Update},
		{"column sum", report.ColumnSum},
		{"predicated column sum", report.PredicatedColumnSum},
		{"predicated all-columns sum", report.PredicatedAllColumnsSum},
	}

	for _, op := range ops {
		fmt.Printf("%-28s %6d %12s %10s %10s %10s\n",
			op.name, op.stats.Calls, op.stats.Total, op.stats.Avg(), op.stats.Min, op.stats.Max)
	}

	fmt.Println()
	result.Printf("final result: %d\n\n", report.FinalResult)
}
