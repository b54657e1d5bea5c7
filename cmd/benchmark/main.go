package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/MeKo-Tech/zscan/internal/benchmark"
)

func main() {
	var (
		iterations  = flag.Int("iterations", 50, "Number of iterations per benchmark")
		symbologies = flag.String("symbologies", "", "Comma-separated symbologies to benchmark (default all)")
		outputFile  = flag.String("output", "", "Output file for results (optional)")
	)
	flag.Parse()

	fmt.Println("zscan Codec Performance Benchmark")
	fmt.Println("=================================")

	samples := benchmark.DefaultSamples()
	if *symbologies != "" {
		samples = filterSamples(samples, *symbologies)
		if len(samples) == 0 {
			log.Fatalf("No benchmark samples match symbologies: %s", *symbologies)
		}
	}

	suite, err := benchmark.NewCodecSuite(samples)
	if err != nil {
		log.Fatalf("Failed to build benchmark suite: %v", err)
	}

	fmt.Printf("Running benchmarks with %d iterations per test...\n", *iterations)
	results := suite.RunAll(*iterations)
	suite.PrintResults(os.Stdout)

	if *outputFile != "" {
		if err := saveResultsToFile(*outputFile, results); err != nil {
			log.Printf("Failed to save results to file: %v", err)
		} else {
			fmt.Printf("Results saved to: %s\n", *outputFile)
		}
	}
}

func filterSamples(samples []benchmark.Sample, csv string) []benchmark.Sample {
	wanted := make(map[string]bool)
	for _, s := range strings.Split(csv, ",") {
		wanted[strings.ToUpper(strings.TrimSpace(s))] = true
	}

	var out []benchmark.Sample
	for _, sample := range samples {
		if wanted[sample.Symbology] {
			out = append(out, sample)
		}
	}
	return out
}

func saveResultsToFile(filename string, results []benchmark.Result) error {
	file, err := os.Create(filename) //nolint:gosec // G304: output path comes from the user
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	_, _ = fmt.Fprintln(file, "zscan Codec Benchmark Results")
	_, _ = fmt.Fprintln(file, "=============================")
	_, _ = fmt.Fprintln(file)

	for _, result := range results {
		_, _ = fmt.Fprintf(file, "%s\n", result.String())
	}

	_, _ = fmt.Fprintln(file)
	_, _ = fmt.Fprintln(file, "CSV Format:")
	_, _ = fmt.Fprintln(file, "Name,Iterations,Total_ms,Avg_ms,Memory_Diff_KB,Error")

	for _, result := range results {
		totalMs := float64(result.Duration.Nanoseconds()) / 1e6
		avgMs := totalMs
		if result.Iterations > 0 {
			avgMs = totalMs / float64(result.Iterations)
		}
		memDiff := int64(result.MemoryAfter.AllocBytes-result.MemoryBefore.AllocBytes) / 1024 //nolint:gosec // G115: display only
		errMsg := ""
		if result.Error != nil {
			errMsg = result.Error.Error()
		}

		_, _ = fmt.Fprintf(file, "%s,%d,%.2f,%.3f,%d,%s\n",
			result.Name, result.Iterations, totalMs, avgMs, memDiff, errMsg)
	}

	return nil
}
