package export

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/radiosky-data/spectro.report/internal/sps"
)

// spectrogramGrid adapts a Dataset to plotter.GridXYZ: x is sweep (time),
// y is frequency channel, matching the original chart orientation.
type spectrogramGrid struct {
	ds *sps.Dataset
}

func (g spectrogramGrid) Dims() (c, r int)   { return g.ds.Rows, g.ds.Cols }
func (g spectrogramGrid) Z(c, r int) float64 { return float64(g.ds.At(c, r)) }
func (g spectrogramGrid) X(c int) float64    { return float64(c) }
func (g spectrogramGrid) Y(r int) float64    { return float64(r) }

// WritePlot renders ds as a PNG spectrogram heat map. The plot is a
// convenience for eyeballing a conversion, not a calibrated display.
func WritePlot(w io.Writer, ds *sps.Dataset) error {
	if ds.Rows == 0 || ds.Cols == 0 {
		return fmt.Errorf("cannot plot empty %dx%d dataset", ds.Rows, ds.Cols)
	}

	p := plot.New()
	p.Title.Text = strings.TrimRight(ds.Meta.Name, " ") + " spectrogram"
	p.X.Label.Text = "Sweep (time)"
	p.Y.Label.Text = "Frequency channel"

	hm := plotter.NewHeatMap(spectrogramGrid{ds: ds}, palette.Heat(256, 1))
	p.Add(hm)

	wt, err := p.WriterTo(10*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("failed to render spectrogram: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write spectrogram: %w", err)
	}
	return nil
}
