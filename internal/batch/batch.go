// Package batch runs the SPS decode pipeline over many files. Files are
// independent (each owns its ByteSource, header and sweeps), so the batch
// fans out over a bounded worker pool with no shared mutable state beyond
// the collected results. One file's failure never halts the run.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/radiosky-data/spectro.report/internal/fsutil"
	"github.com/radiosky-data/spectro.report/internal/sps"
)

// FileResult is the outcome of one file's conversion attempt.
type FileResult struct {
	Path    string
	Sweeps  int
	Samples int
	Dropped int // sample words discarded from an unterminated trailing sweep
	Err     error
}

// Tally counts outcomes across a batch run.
type Tally struct {
	Attempted int
	Succeeded int
	Skipped   int
}

// AllFailed reports whether every attempted file failed; the process exit
// status reflects overall batch success unless this is true.
func (t Tally) AllFailed() bool {
	return t.Attempted > 0 && t.Succeeded == 0
}

// Handler consumes one successfully decoded dataset, typically by writing
// output files. A handler error fails that file only.
type Handler func(path string, ds *sps.Dataset, dropped int) error

// Runner converts a set of SPS files.
type Runner struct {
	FS      fsutil.FileSystem
	Workers int // concurrent files; values < 1 mean sequential
	Handle  Handler
}

// Discover lists the files in dir whose extension matches ext (case
// insensitive), sorted by name. Subdirectories are not descended into.
func (r *Runner) Discover(dir, ext string) ([]string, error) {
	entries, err := r.FS.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Run decodes every path, invoking the handler for each successful decode.
// Results come back sorted by path. Cancelling ctx stops new files from
// starting; files already in flight finish normally.
func (r *Runner) Run(ctx context.Context, paths []string) ([]FileResult, Tally) {
	workers := r.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan string)
	var (
		mu      sync.Mutex
		results []FileResult
	)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				res := r.processFile(path)
				mu.Lock()
				results = append(results, res)
				mu.Unlock()
			}
		}()
	}

feed:
	for _, path := range paths {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		select {
		case jobs <- path:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	var tally Tally
	tally.Attempted = len(results)
	for _, res := range results {
		if res.Err == nil {
			tally.Succeeded++
		} else {
			tally.Skipped++
		}
	}
	return results, tally
}

// processFile decodes a single file and hands the dataset to the handler.
// Every error path is contained here: nothing propagates across file
// boundaries.
func (r *Runner) processFile(path string) FileResult {
	res := FileResult{Path: path}

	data, err := r.FS.ReadFile(path)
	if err != nil {
		res.Err = fmt.Errorf("read failed: %w", err)
		return res
	}

	ds, dropped, err := sps.Decode(sps.NewByteSource(data))
	if err != nil {
		res.Err = err
		return res
	}
	res.Sweeps = ds.Rows
	res.Samples = ds.Rows * ds.Cols
	res.Dropped = dropped

	if r.Handle != nil {
		if err := r.Handle(path, ds, dropped); err != nil {
			res.Err = fmt.Errorf("output failed: %w", err)
		}
	}
	return res
}
