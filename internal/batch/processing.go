package batch

import (
	"sync"

	"github.com/MeKo-Tech/zscan"
	"github.com/MeKo-Tech/zscan/internal/imgio"
)

// FileResult pairs one input file with its decode outcome.
type FileResult struct {
	Path   string        `json:"file"`
	Result *zscan.Result `json:"barcode,omitempty"`
	Err    error         `json:"-"`
}

// processFiles decodes files on a bounded worker pool. Results come back
// in input order regardless of completion order.
func processFiles(files []string, opts Options) []FileResult {
	results := make([]FileResult, len(files))

	jobs := make(chan int)
	var wg sync.WaitGroup
	workers := opts.Workers
	if workers > len(files) {
		workers = len(files)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = processFile(files[i], opts)
			}
		}()
	}
	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

// processFile decodes a single file, downscaling oversized scans first so a
// stray 100-megapixel input cannot stall the pool.
func processFile(path string, opts Options) FileResult {
	if opts.MaxImageSize <= 0 {
		res, err := zscan.DecodeFile(path, opts.DecodeOptions)
		return FileResult{Path: path, Result: res, Err: err}
	}

	img, _, err := imgio.Load(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	res, err := zscan.DecodeImage(imgio.FitWithin(img, opts.MaxImageSize), opts.DecodeOptions)
	return FileResult{Path: path, Result: res, Err: err}
}
