// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/dxfoil/internal/datfile"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
	Results   []*Result
}

// Total returns the number of drawings processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any drawing failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Batch converts every .dxf file in dir, writing .dat files with matching
// base names into outDir. Drawings whose output already exists are skipped.
// Per-file status lines go to w followed by a summary; individual failures
// do not stop the run.
func Batch(dir, outDir string, format datfile.Format, w io.Writer) (BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return BatchResult{}, fmt.Errorf("reading drawing directory %s: %w", dir, err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	var result BatchResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".dxf") {
			continue
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		dxfPath := filepath.Join(dir, entry.Name())
		outPath := filepath.Join(outDir, base+".dat")

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			result.Skipped++
			continue
		}

		res, err := File(dxfPath, outPath, format, io.Discard)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			continue
		}

		fmt.Fprintf(w, "converted: %s (%d points)\n", base, res.PointsWritten())
		result.Converted++
		result.Results = append(result.Results, res)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}
