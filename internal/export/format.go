package export

import (
	"fmt"
	"io"

	"github.com/radiosky-data/spectro.report/internal/sps"
)

// Format selects the output container for a converted dataset.
type Format int

const (
	FormatFITS Format = iota
	FormatCSV
	FormatRaw
)

// ParseFormat maps a CLI format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "fits":
		return FormatFITS, nil
	case "csv":
		return FormatCSV, nil
	case "raw":
		return FormatRaw, nil
	}
	return 0, fmt.Errorf("unknown output format %q (want fits, csv or raw)", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	switch f {
	case FormatFITS:
		return ".fits"
	case FormatCSV:
		return ".csv"
	case FormatRaw:
		return ".raw"
	}
	return ""
}

// String returns the CLI name of the format.
func (f Format) String() string {
	switch f {
	case FormatFITS:
		return "fits"
	case FormatCSV:
		return "csv"
	case FormatRaw:
		return "raw"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Write serialises ds to w in the chosen format.
func Write(w io.Writer, f Format, ds *sps.Dataset) error {
	switch f {
	case FormatFITS:
		return WriteFITS(w, ds)
	case FormatCSV:
		return WriteCSV(w, ds)
	case FormatRaw:
		return WriteRaw(w, ds)
	}
	return fmt.Errorf("unknown output format %d", int(f))
}
