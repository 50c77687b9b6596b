package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/radiosky-data/spectro.report/internal/sps"
	"github.com/radiosky-data/spectro.report/internal/units"
)

// WriteCSV writes ds in tabular text form: a metadata preamble, a header
// row, then one row per sweep with the sweep index in the first column.
func WriteCSV(w io.Writer, ds *sps.Dataset) error {
	cw := csv.NewWriter(w)

	meta := [][]string{
		{"# name", strings.TrimRight(ds.Meta.Name, " ")},
		{"# source", strings.TrimRight(ds.Meta.Source, " ")},
		{"# latitude", fmt.Sprintf("%.6f", ds.Meta.Latitude)},
		{"# longitude", fmt.Sprintf("%.6f", ds.Meta.Longitude)},
		{"# start", units.FormatTimestamp(ds.Meta.Start)},
		{"# end", units.FormatTimestamp(ds.Meta.End)},
		{"# timezone", units.OffsetLabel(ds.Meta.TimeZone)},
	}
	for _, row := range meta {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV metadata: %w", err)
		}
	}

	header := make([]string, 0, ds.Cols+1)
	header = append(header, "sweep")
	for c := 0; c < ds.Cols; c++ {
		header = append(header, "sample_"+strconv.Itoa(c))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	row := make([]string, ds.Cols+1)
	for r := 0; r < ds.Rows; r++ {
		row[0] = strconv.Itoa(r)
		for c, v := range ds.Row(r) {
			row[c+1] = strconv.FormatUint(uint64(v), 10)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", r, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
