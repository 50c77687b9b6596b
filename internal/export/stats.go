package export

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/radiosky-data/spectro.report/internal/sps"
)

// IntensityStats summarises the sample values of a dataset. Used for plot
// scaling and for operator-facing summaries.
type IntensityStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Stats computes the intensity statistics of ds. An empty matrix yields the
// zero value.
func Stats(ds *sps.Dataset) IntensityStats {
	if len(ds.Samples) == 0 {
		return IntensityStats{}
	}

	vals := make([]float64, len(ds.Samples))
	for i, v := range ds.Samples {
		vals[i] = float64(v)
	}

	mean, std := stat.MeanStdDev(vals, nil)
	return IntensityStats{
		Min:    floats.Min(vals),
		Max:    floats.Max(vals),
		Mean:   mean,
		StdDev: std,
	}
}
