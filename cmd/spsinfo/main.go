// Command spsinfo prints the header and sample statistics of a single SPS
// file without converting it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/radiosky-data/spectro.report/internal/export"
	"github.com/radiosky-data/spectro.report/internal/sps"
	"github.com/radiosky-data/spectro.report/internal/units"
)

var (
	file      = flag.String("file", "", "SPS file to inspect")
	withStats = flag.Bool("stats", false, "Also decode the sweep stream and print intensity statistics")
)

func main() {
	flag.Parse()
	if *file == "" {
		log.Fatal("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("Cannot read %s: %v", *file, err)
	}
	src := sps.NewByteSource(data)
	h := sps.ParseHeader(src)

	fmt.Printf("file:      %s (%d bytes)\n", *file, src.Size())
	for _, f := range sps.HeaderSchema {
		fmt.Printf("%-11s%s\n", strings.ToLower(f.Name)+":", formatField(f.Name, h.Field(f.Name)))
	}
	fmt.Printf("data at:   byte %d\n", h.DataStart())

	if !*withStats {
		return
	}

	sweeps, dropped, err := sps.DecodeSweeps(src, h.DataStart())
	if err != nil {
		log.Fatalf("Cannot decode sweeps: %v", err)
	}
	ds, err := sps.Assemble(sweeps, h)
	if err != nil {
		log.Fatalf("Cannot assemble dataset: %v", err)
	}

	stats := export.Stats(ds)
	fmt.Printf("sweeps:    %d x %d samples\n", ds.Rows, ds.Cols)
	if dropped > 0 {
		fmt.Printf("dropped:   %d unterminated trailing words\n", dropped)
	}
	fmt.Printf("intensity: min %.0f  max %.0f  mean %.2f  stddev %.2f\n",
		stats.Min, stats.Max, stats.Mean, stats.StdDev)
}

// formatField renders a decoded header value for display. Start and End are
// stored as fractional day counts; show them as timestamps alongside the raw
// value. Strings drop their fixed-width padding.
func formatField(name string, v any) string {
	switch vv := v.(type) {
	case string:
		return strings.TrimRight(vv, " \x00")
	case float64:
		if name == "Start" || name == "End" {
			return fmt.Sprintf("%s (%g days)", units.FormatTimestamp(units.FromDayCount(vv)), vv)
		}
		return fmt.Sprintf("%g", vv)
	case int16:
		if name == "TimeZone" {
			return units.OffsetLabel(vv)
		}
		return fmt.Sprintf("%d", vv)
	case int32:
		return fmt.Sprintf("%d", vv)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
