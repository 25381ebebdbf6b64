// Package qcplot draws FASTQ QC histograms.
package qcplot

import (
	"errors"
	"io"
	"sort"

	"biolab/internal/fastq"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DefaultBins matches the lab's histogram resolution.
const DefaultBins = 20

// Figure size of the two-panel PNG.
var (
	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch
)

// ErrNoDistribution is returned when stats were computed without
// distributions.
var ErrNoDistribution = errors.New("qcplot: stats carry no length/quality distribution")

// weighted turns a value->count map into XYs sorted by value, with the count
// as the histogram weight.
func weighted(counts map[int]int64) plotter.XYs {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	xys := make(plotter.XYs, len(keys))
	for i, k := range keys {
		xys[i].X = float64(k)
		xys[i].Y = float64(counts[k])
	}
	return xys
}

func histogram(title, xlabel, ylabel string, counts map[int]int64, bins int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	h, err := plotter.NewHistogram(weighted(counts), bins)
	if err != nil {
		return nil, err
	}
	p.Add(h)
	return p, nil
}

// Build returns the read-length and Phred histograms, left to right.
func Build(s fastq.Stats, bins int) ([]*plot.Plot, error) {
	if len(s.LengthCounts) == 0 || len(s.PhredCounts) == 0 {
		return nil, ErrNoDistribution
	}
	if bins <= 0 {
		bins = DefaultBins
	}
	lengths, err := histogram("Read length distribution", "Length", "Reads", s.LengthCounts, bins)
	if err != nil {
		return nil, err
	}
	phreds, err := histogram("Phred score distribution", "Phred score", "Frequency", s.PhredCounts, bins)
	if err != nil {
		return nil, err
	}
	return []*plot.Plot{lengths, phreds}, nil
}

// Write renders both histograms side by side as a PNG.
func Write(w io.Writer, s fastq.Stats, bins int) error {
	plots, err := Build(s, bins)
	if err != nil {
		return err
	}
	img := vgimg.New(Width, Height)
	dc := draw.New(img)
	tiles := draw.Tiles{Rows: 1, Cols: len(plots), PadX: vg.Millimeter * 4}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}
