// Command spectro converts SPS instrument logs into FITS, CSV or raw array
// dumps, one file at a time or over a whole directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/radiosky-data/spectro.report/internal/batch"
	"github.com/radiosky-data/spectro.report/internal/catalog"
	"github.com/radiosky-data/spectro.report/internal/export"
	"github.com/radiosky-data/spectro.report/internal/fsutil"
	"github.com/radiosky-data/spectro.report/internal/report"
	"github.com/radiosky-data/spectro.report/internal/sps"
	"github.com/radiosky-data/spectro.report/internal/version"
)

var (
	source      = flag.String("source", "", "SPS file or directory to convert")
	destination = flag.String("destination", ".", "Output directory")
	format      = flag.String("format", "fits", "Output format: fits, csv or raw")
	matchExt    = flag.String("ext", ".sps", "File extension to match in directory mode")
	workers     = flag.Int("workers", 4, "Concurrent files in directory mode")
	plotOut     = flag.Bool("plot", false, "Also write a PNG spectrogram per file")
	catalogPath = flag.String("catalog", "", "Optional sqlite catalog recording run results")
	reportPath  = flag.String("report", "", "Optional HTML batch report output path")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println("spectro " + version.String())
		return
	}
	if *source == "" {
		log.Fatal("-source is required")
	}

	outFormat, err := export.ParseFormat(*format)
	if err != nil {
		log.Fatalf("Invalid format: %v", err)
	}

	filesystem := fsutil.OSFileSystem{}
	if err := filesystem.MkdirAll(*destination, 0755); err != nil {
		log.Fatalf("Cannot create destination %s: %v", *destination, err)
	}

	runner := &batch.Runner{
		FS:      filesystem,
		Workers: *workers,
		Handle:  makeHandler(filesystem, *destination, outFormat, *plotOut),
	}

	paths, err := collectInputs(runner, filesystem, *source, *matchExt)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if len(paths) == 0 {
		log.Fatalf("No %s files found under %s", *matchExt, *source)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	results, tally := runner.Run(ctx, paths)

	for _, res := range results {
		switch {
		case res.Err != nil:
			log.Printf("skip %s: %v", res.Path, res.Err)
		case res.Dropped > 0:
			log.Printf("converted %s: %d sweeps, %d samples (dropped %d unterminated trailing words)",
				res.Path, res.Sweeps, res.Samples, res.Dropped)
		default:
			log.Printf("converted %s: %d sweeps, %d samples", res.Path, res.Sweeps, res.Samples)
		}
	}
	log.Printf("batch complete in %v: %d attempted, %d converted, %d skipped",
		time.Since(started).Round(time.Millisecond), tally.Attempted, tally.Succeeded, tally.Skipped)

	runID := catalog.NewRunID()
	if *catalogPath != "" {
		if err := recordCatalog(*catalogPath, runID, started, results, tally); err != nil {
			log.Printf("WARNING: catalog update failed: %v", err)
		}
	}
	if *reportPath != "" {
		if err := writeReport(filesystem, *reportPath, runID, results, tally); err != nil {
			log.Printf("WARNING: report write failed: %v", err)
		} else {
			log.Printf("report: %s", *reportPath)
		}
	}

	if tally.AllFailed() {
		os.Exit(1)
	}
}

// collectInputs resolves the -source flag into the list of files to decode:
// the file itself, or the matching entries of a directory.
func collectInputs(runner *batch.Runner, filesystem fsutil.FileSystem, source, ext string) ([]string, error) {
	info, err := filesystem.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("cannot stat source %s: %w", source, err)
	}
	if info.IsDir() {
		return runner.Discover(source, ext)
	}
	return []string{source}, nil
}

// outputPath maps an input file to its output path in dest, swapping the
// extension for the format's.
func outputPath(dest, src, ext string) string {
	base := filepath.Base(src)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dest, base+ext)
}

// makeHandler builds the per-file output writer used by the batch runner.
func makeHandler(filesystem fsutil.FileSystem, dest string, f export.Format, plot bool) batch.Handler {
	return func(path string, ds *sps.Dataset, dropped int) error {
		if err := writeOutput(filesystem, outputPath(dest, path, f.Ext()), func(w io.Writer) error {
			return export.Write(w, f, ds)
		}); err != nil {
			return err
		}

		if plot {
			if err := writeOutput(filesystem, outputPath(dest, path, ".png"), func(w io.Writer) error {
				return export.WritePlot(w, ds)
			}); err != nil {
				return err
			}
		}
		return nil
	}
}

// writeOutput creates the file, runs the writer and closes it, reporting the
// first error.
func writeOutput(filesystem fsutil.FileSystem, path string, write func(w io.Writer) error) error {
	out, err := filesystem.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// recordCatalog stores the run and its per-file outcomes.
func recordCatalog(path, runID string, started time.Time, results []batch.FileResult, tally batch.Tally) error {
	cat, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer cat.Close()

	if err := cat.RecordRun(runID, tally.Attempted, tally.Succeeded, tally.Skipped, started); err != nil {
		return err
	}
	for _, res := range results {
		rec := catalog.FileRecord{
			RunID:   runID,
			Path:    res.Path,
			Status:  "converted",
			Sweeps:  res.Sweeps,
			Samples: res.Samples,
		}
		if res.Err != nil {
			rec.Status = "skipped"
			rec.Reason = res.Err.Error()
		}
		if err := cat.RecordFile(rec); err != nil {
			return err
		}
	}
	return nil
}

// writeReport renders the HTML batch report.
func writeReport(filesystem fsutil.FileSystem, path, runID string, results []batch.FileResult, tally batch.Tally) error {
	out, err := filesystem.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := report.WriteHTML(out, runID, results, tally); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
