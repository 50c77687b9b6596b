package sps

import (
	"time"

	"github.com/radiosky-data/spectro.report/internal/units"
)

// Metadata is the annotation set derived from the header for output writers.
// It carries the site coordinates, identifying strings and the absolute
// start/end timestamps computed from the header's day-count scalars.
type Metadata struct {
	Version  string
	Source   string
	Author   string
	Name     string
	Location string

	Latitude  float64
	Longitude float64
	ChartMax  float64
	ChartMin  float64
	TimeZone  int16
	Channels  int16

	Start time.Time // EpochAnchor + Start day count
	End   time.Time // EpochAnchor + End day count
}

// Dataset is the rectangular decoded form of one SPS file: rows are sweeps in
// stream order, columns are samples within a sweep. Samples is row-major.
type Dataset struct {
	Rows    int
	Cols    int
	Samples []uint16
	Meta    Metadata
}

// At returns the sample at sweep row r, column c.
func (d *Dataset) At(r, c int) uint16 {
	return d.Samples[r*d.Cols+c]
}

// Row returns the samples of sweep row r as a view into the dataset.
func (d *Dataset) Row(r int) []uint16 {
	return d.Samples[r*d.Cols : (r+1)*d.Cols]
}

// Assemble rectangularises the ordered sweep list and pairs it with metadata
// derived from the header. Zero sweeps means the delimiter was never found
// and yields a *FormatError. Sweeps of unequal width yield a *RaggedError:
// normal-operation files have a uniform sweep width, so a disagreement marks
// the file as bad rather than being papered over by padding or truncation.
func Assemble(sweeps []Sweep, h *Header) (*Dataset, error) {
	if len(sweeps) == 0 {
		return nil, &FormatError{Reason: "no sweep delimiter found, zero sweeps decoded"}
	}

	cols := len(sweeps[0])
	for i, sw := range sweeps {
		if len(sw) != cols {
			return nil, &RaggedError{Sweep: i, Want: cols, Got: len(sw)}
		}
	}

	d := &Dataset{
		Rows:    len(sweeps),
		Cols:    cols,
		Samples: make([]uint16, 0, len(sweeps)*cols),
		Meta:    deriveMetadata(h),
	}
	for _, sw := range sweeps {
		d.Samples = append(d.Samples, sw...)
	}
	return d, nil
}

func deriveMetadata(h *Header) Metadata {
	return Metadata{
		Version:   h.Version,
		Source:    h.Source,
		Author:    h.Author,
		Name:      h.Name,
		Location:  h.Location,
		Latitude:  h.Latitude,
		Longitude: h.Longitude,
		ChartMax:  h.ChartMax,
		ChartMin:  h.ChartMin,
		TimeZone:  h.TimeZone,
		Channels:  h.Channels,
		Start:     units.FromDayCount(h.Start),
		End:       units.FromDayCount(h.End),
	}
}
