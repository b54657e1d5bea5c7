// Package benchmark measures encode and decode throughput of the barcode
// codec across symbologies.
package benchmark

import (
	"fmt"
	"image/png"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/MeKo-Tech/zscan"
)

// Timer provides simple timing utilities for benchmarking.
type Timer struct {
	start    time.Time
	name     string
	duration time.Duration
}

// NewTimer creates a new timer with the given name.
func NewTimer(name string) *Timer {
	return &Timer{
		name:  name,
		start: time.Now(),
	}
}

// Stop stops the timer and returns the elapsed duration.
func (t *Timer) Stop() time.Duration {
	t.duration = time.Since(t.start)
	return t.duration
}

// Duration returns the recorded duration (only valid after Stop()).
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// String returns a formatted string representation of the timer.
func (t *Timer) String() string {
	return fmt.Sprintf("%s: %v", t.name, t.duration)
}

// MemoryStats holds memory usage statistics.
type MemoryStats struct {
	AllocBytes      uint64  // Currently allocated bytes
	TotalAllocBytes uint64  // Total allocated bytes (cumulative)
	SysBytes        uint64  // Total bytes from system
	NumGC           uint32  // Number of GC runs
	GCCPUFraction   float64 // Fraction of CPU time spent in GC
}

// GetMemoryStats returns current memory statistics.
func GetMemoryStats() MemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MemoryStats{
		AllocBytes:      m.Alloc,
		TotalAllocBytes: m.TotalAlloc,
		SysBytes:        m.Sys,
		NumGC:           m.NumGC,
		GCCPUFraction:   m.GCCPUFraction,
	}
}

// String returns a formatted string representation of memory stats.
func (m MemoryStats) String() string {
	return fmt.Sprintf("Alloc: %d KB, Total: %d KB, Sys: %d KB, GC: %d (%.2f%% CPU)",
		m.AllocBytes/1024,
		m.TotalAllocBytes/1024,
		m.SysBytes/1024,
		m.NumGC,
		m.GCCPUFraction*100)
}

// Result holds the result of a benchmark run.
type Result struct {
	Name         string
	Duration     time.Duration
	MemoryBefore MemoryStats
	MemoryAfter  MemoryStats
	Iterations   int
	Error        error
}

// String returns a formatted string representation of the benchmark result.
func (r Result) String() string {
	if r.Error != nil {
		return fmt.Sprintf("%s: ERROR - %v", r.Name, r.Error)
	}

	memDiff := r.MemoryAfter.AllocBytes - r.MemoryBefore.AllocBytes
	avgDuration := r.Duration / time.Duration(r.Iterations)

	return fmt.Sprintf("%s: %d iterations, avg: %v, total: %v, mem: +%d KB",
		r.Name, r.Iterations, avgDuration, r.Duration, int64(memDiff)/1024) //nolint:gosec // G115: Safe conversion for memory display
}

// Benchmark represents a benchmark function.
type Benchmark struct {
	Name string
	Func func() error
}

// Suite manages multiple benchmarks.
type Suite struct {
	benchmarks []Benchmark
	results    []Result
	mu         sync.Mutex
}

// NewSuite creates a new benchmark suite.
func NewSuite() *Suite {
	return &Suite{
		benchmarks: make([]Benchmark, 0),
		results:    make([]Result, 0),
	}
}

// Add adds a benchmark to the suite.
func (s *Suite) Add(name string, fn func() error) {
	s.benchmarks = append(s.benchmarks, Benchmark{
		Name: name,
		Func: fn,
	})
}

// Run runs a single benchmark with the specified number of iterations.
func (s *Suite) Run(name string, iterations int) Result {
	for _, b := range s.benchmarks {
		if b.Name == name {
			return runBenchmark(b, iterations)
		}
	}
	return Result{
		Name:  name,
		Error: fmt.Errorf("benchmark '%s' not found", name),
	}
}

// RunAll runs all benchmarks in the suite.
func (s *Suite) RunAll(iterations int) []Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = make([]Result, 0, len(s.benchmarks))
	for _, benchmark := range s.benchmarks {
		s.results = append(s.results, runBenchmark(benchmark, iterations))
	}
	return s.results
}

// runBenchmark executes a single benchmark.
func runBenchmark(benchmark Benchmark, iterations int) Result {
	// Force garbage collection before measuring
	runtime.GC()
	memBefore := GetMemoryStats()

	timer := NewTimer(benchmark.Name)
	var err error

	for n := 0; n < iterations; n++ {
		if e := benchmark.Func(); e != nil {
			err = e
			break
		}
	}

	duration := timer.Stop()
	memAfter := GetMemoryStats()

	return Result{
		Name:         benchmark.Name,
		Duration:     duration,
		MemoryBefore: memBefore,
		MemoryAfter:  memAfter,
		Iterations:   iterations,
		Error:        err,
	}
}

// Results returns the last run results.
func (s *Suite) Results() []Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// PrintResults writes formatted benchmark results to w.
func (s *Suite) PrintResults(w io.Writer) {
	results := s.Results()
	fmt.Fprintln(w, "\nBenchmark Results:")
	fmt.Fprintln(w, "==================")
	for _, result := range results {
		fmt.Fprintln(w, result.String())
	}
	fmt.Fprintln(w)
}

// Sample is one symbology/payload pair benchmarked by the codec suite.
type Sample struct {
	Symbology string
	Text      string
	Width     int
	Height    int
}

// DefaultSamples covers the symbologies with both an encoder and a decoder.
func DefaultSamples() []Sample {
	return []Sample{
		{Symbology: "QR_CODE", Text: "https://example.com/benchmark", Width: 256, Height: 256},
		{Symbology: "DATA_MATRIX", Text: "DM-BENCH-001", Width: 256, Height: 256},
		{Symbology: "CODE_128", Text: "BENCH-0042", Width: 400, Height: 120},
		{Symbology: "EAN_13", Text: "4006381333931", Width: 400, Height: 120},
	}
}

// NewCodecSuite builds a suite with encode, decode and PNG round-trip
// benchmarks for each sample.
func NewCodecSuite(samples []Sample) (*Suite, error) {
	suite := NewSuite()

	for _, sample := range samples {
		sample := sample

		suite.Add("Encode_"+sample.Symbology, func() error {
			_, err := zscan.Encode(sample.Text, sample.Symbology, sample.Width, sample.Height, nil)
			return err
		})

		// Pre-render once so the decode benchmark measures decoding only.
		matrix, err := zscan.Encode(sample.Text, sample.Symbology, sample.Width, sample.Height, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s sample: %w", sample.Symbology, err)
		}
		img := matrix.Image()

		suite.Add("Decode_"+sample.Symbology, func() error {
			_, err := zscan.DecodeImage(img, nil)
			return err
		})

		suite.Add("RoundTripPNG_"+sample.Symbology, func() error {
			m, err := zscan.Encode(sample.Text, sample.Symbology, sample.Width, sample.Height, nil)
			if err != nil {
				return err
			}
			var buf pngBuffer
			if err := png.Encode(&buf, m.Image()); err != nil {
				return err
			}
			res, err := zscan.DecodeBytes(buf.data, nil)
			if err != nil {
				return err
			}
			if res.Text != sample.Text {
				return fmt.Errorf("round trip mismatch: got %q, want %q", res.Text, sample.Text)
			}
			return nil
		})
	}
	return suite, nil
}

// pngBuffer is a minimal io.Writer that keeps the encoded bytes.
type pngBuffer struct {
	data []byte
}

func (b *pngBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}
